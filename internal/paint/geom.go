package paint

import "math"

// Rect is an axis-aligned rectangle in logical pixels.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether r has no area; an empty rect stands for "not measured".
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

func (r Rect) Contains(x, y float64) bool {
	return !r.Empty() && x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) Center() (float64, float64) { return r.X + r.W/2, r.Y + r.H/2 }

// Scale returns r scaled by s around its centre.
func (r Rect) Scale(s float64) Rect {
	cx, cy := r.Center()
	w, h := r.W*s, r.H*s
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: math.Max(0, r.W-2*d), H: math.Max(0, r.H-2*d)}
}

// Point is a 2D coordinate.
type Point struct{ X, Y float64 }

// RoundRectOutline returns a closed polyline approximating a rounded
// rectangle, segs points per corner. Surfaces without native arcs stroke it.
func RoundRectOutline(r Rect, radius float64, segs int) []Point {
	radius = math.Min(radius, math.Min(r.W, r.H)/2)
	if segs < 1 {
		segs = 1
	}
	corners := [4]struct{ cx, cy, a0 float64 }{
		{r.X + r.W - radius, r.Y + radius, -math.Pi / 2},
		{r.X + r.W - radius, r.Y + r.H - radius, 0},
		{r.X + radius, r.Y + r.H - radius, math.Pi / 2},
		{r.X + radius, r.Y + radius, math.Pi},
	}
	pts := make([]Point, 0, 4*(segs+1)+1)
	for _, c := range corners {
		for i := 0; i <= segs; i++ {
			a := c.a0 + float64(i)/float64(segs)*math.Pi/2
			pts = append(pts, Point{X: c.cx + math.Cos(a)*radius, Y: c.cy + math.Sin(a)*radius})
		}
	}
	return append(pts, pts[0])
}

// FadeAlpha is the alpha profile used by FadedLine approximations: zero at
// t=0 and t=1, one at t=0.5.
func FadeAlpha(t float64) float64 {
	return math.Sin(Clamp01(t) * math.Pi)
}
