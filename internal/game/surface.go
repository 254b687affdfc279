package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/PiyushKingg/yushen/internal/paint"
)

const (
	glowSteps   = 8
	fadeSegs    = 12
	cornerSegs  = 6
	debugGlyphW = 6
	debugGlyphH = 16
)

// Surface is an offscreen ebiten image addressed in logical pixels. It
// allocates w·dpr × h·dpr device pixels.
type Surface struct {
	img  *ebiten.Image
	w, h int
	dpr  float64

	// rendered debug-font strings, white, keyed by text
	text map[string]*ebiten.Image
}

var _ paint.TextCanvas = (*Surface)(nil)

func NewSurface() *Surface {
	return &Surface{dpr: 1, text: map[string]*ebiten.Image{}}
}

func (s *Surface) Resize(w, h int, dpr float64) {
	if !s.setSize(w, h, dpr) {
		return
	}
	if s.img != nil {
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(int(math.Ceil(float64(s.w)*s.dpr)), int(math.Ceil(float64(s.h)*s.dpr)))
}

// setSize records a new size and reports whether the backing image must
// be reallocated. The page re-wraps its copy when the width changes, so
// the text cache is emptied then.
func (s *Surface) setSize(w, h int, dpr float64) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	if dpr <= 0 {
		dpr = 1
	}
	if s.img != nil && w == s.w && h == s.h && dpr == s.dpr {
		return false
	}
	if w != s.w || dpr != s.dpr {
		s.dropText()
	}
	s.w, s.h, s.dpr = w, h, dpr
	return true
}

func (s *Surface) dropText() {
	for _, img := range s.text {
		if img != nil {
			img.Deallocate()
		}
	}
	s.text = map[string]*ebiten.Image{}
}

func (s *Surface) Size() (int, int) { return s.w, s.h }

// Image returns the backing image, nil before the first valid Resize.
func (s *Surface) Image() *ebiten.Image { return s.img }

func (s *Surface) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

func f32(v float64) float32 { return float32(v) }

func (s *Surface) FillCircle(x, y, r float64, c paint.Color) {
	k := s.dpr
	vector.DrawFilledCircle(s.img, f32(x*k), f32(y*k), f32(r*k), c.NRGBA(), true)
}

func (s *Surface) StrokeCircle(x, y, r, width float64, c paint.Color) {
	k := s.dpr
	vector.StrokeCircle(s.img, f32(x*k), f32(y*k), f32(r*k), f32(width*k), c.NRGBA(), true)
}

func (s *Surface) Line(x1, y1, x2, y2, width float64, c paint.Color) {
	k := s.dpr
	vector.StrokeLine(s.img, f32(x1*k), f32(y1*k), f32(x2*k), f32(y2*k), f32(width*k), c.NRGBA(), true)
}

// FadedLine approximates the gradient with short segments, each at the
// alpha of its midpoint.
func (s *Surface) FadedLine(x1, y1, x2, y2, width float64, c paint.Color) {
	dx, dy := x2-x1, y2-y1
	for i := 0; i < fadeSegs; i++ {
		t0, t1 := float64(i)/fadeSegs, float64(i+1)/fadeSegs
		a := c.A * paint.FadeAlpha((t0+t1)/2)
		if a <= 0 {
			continue
		}
		s.Line(x1+dx*t0, y1+dy*t0, x1+dx*t1, y1+dy*t1, width, c.WithAlpha(a))
	}
}

// Glow stacks translucent discs from the rim inwards; the centre receives
// roughly c.A in total.
func (s *Surface) Glow(x, y, r float64, c paint.Color) {
	if r <= 0 {
		return
	}
	step := c.WithAlpha(c.A / glowSteps)
	for i := glowSteps; i >= 1; i-- {
		s.FillCircle(x, y, r*float64(i)/glowSteps, step)
	}
}

// FillRoundRect fills a band plus one row per device pixel for each cap,
// so no pixel is covered twice and translucent panels stay even.
func (s *Surface) FillRoundRect(r paint.Rect, radius float64, c paint.Color) {
	if r.Empty() {
		return
	}
	k := s.dpr
	x, y, w, h := r.X*k, r.Y*k, r.W*k, r.H*k
	rad := math.Floor(math.Min(radius*k, math.Min(w, h)/2))
	clr := c.NRGBA()
	vector.DrawFilledRect(s.img, f32(x), f32(y+rad), f32(w), f32(h-2*rad), clr, false)
	for i := 0.0; i < rad; i++ {
		dy := rad - i - 0.5
		in := rad - math.Sqrt(rad*rad-dy*dy)
		vector.DrawFilledRect(s.img, f32(x+in), f32(y+i), f32(w-2*in), 1, clr, false)
		vector.DrawFilledRect(s.img, f32(x+in), f32(y+h-i-1), f32(w-2*in), 1, clr, false)
	}
}

func (s *Surface) StrokeRoundRect(r paint.Rect, radius, width float64, c paint.Color) {
	pts := paint.RoundRectOutline(r, radius, cornerSegs)
	for i := 1; i < len(pts); i++ {
		s.Line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, width, c)
	}
}

// Text draws s with the debug font, tinted by c.
func (s *Surface) Text(str string, x, y float64, c paint.Color) {
	if str == "" || c.A <= 0 {
		return
	}
	src, ok := s.text[str]
	if !ok {
		src = ebiten.NewImage(len(str)*debugGlyphW+2, debugGlyphH)
		ebitenutil.DebugPrint(src, str)
		s.text[str] = src
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.dpr, s.dpr)
	op.GeoM.Translate(x*s.dpr, y*s.dpr)
	op.ColorScale.ScaleWithColor(c.NRGBA())
	s.img.DrawImage(src, op)
}
