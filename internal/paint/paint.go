// Package paint defines the drawing surface the animated components paint
// onto. Hosts (ebiten window, gg snapshot, tcell terminal) each provide an
// implementation of Canvas.
package paint

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Color is a straight-alpha colour with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

var (
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Black       = Color{A: 1}
	Transparent = Color{}
)

// WithAlpha returns c with its alpha replaced by a (clamped).
func (c Color) WithAlpha(a float64) Color {
	c.A = Clamp01(a)
	return c
}

// NRGBA converts c to an 8-bit non-premultiplied colour.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(Clamp01(c.R) * 255)),
		G: uint8(math.Round(Clamp01(c.G) * 255)),
		B: uint8(math.Round(Clamp01(c.B) * 255)),
		A: uint8(math.Round(Clamp01(c.A) * 255)),
	}
}

// Hex parses "#rrggbb" (or "#rgb") into an opaque colour.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.Wrapf(err, "parse colour %q", s)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// Blend mixes a toward b by t in Lab space.
func Blend(a, b Color, t float64) Color {
	ca := colorful.Color{R: a.R, G: a.G, B: a.B}
	cb := colorful.Color{R: b.R, G: b.G, B: b.B}
	m := ca.BlendLab(cb, Clamp01(t)).Clamped()
	return Color{R: m.R, G: m.G, B: m.B, A: a.A + (b.A-a.A)*Clamp01(t)}
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Canvas is an immediate-mode drawing surface in logical (CSS-like) pixels.
// Implementations scale by the device pixel ratio internally.
type Canvas interface {
	// Resize reallocates the backing store for a w×h logical viewport.
	Resize(w, h int, dpr float64)
	// Size returns the logical size.
	Size() (w, h int)
	Clear()
	FillCircle(x, y, r float64, c Color)
	StrokeCircle(x, y, r, width float64, c Color)
	Line(x1, y1, x2, y2, width float64, c Color)
	// FadedLine strokes a segment that is transparent at both ends and c
	// at its midpoint.
	FadedLine(x1, y1, x2, y2, width float64, c Color)
	// Glow fills a disc of radius r with a radial gradient from c at the
	// centre to transparent at the rim.
	Glow(x, y, r float64, c Color)
	FillRoundRect(r Rect, radius float64, c Color)
	StrokeRoundRect(r Rect, radius, width float64, c Color)
}

// TextCanvas is implemented by surfaces that can also draw text.
type TextCanvas interface {
	Canvas
	Text(s string, x, y float64, c Color)
}

// UnmarshalText parses a hex colour, so Color can be set from config files.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := Hex(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

type overlay struct{ Canvas }

func (overlay) Clear() {}

type textOverlay struct{ TextCanvas }

func (textOverlay) Clear() {}

// Overlay wraps c so that Clear does nothing. Hosts with a single surface
// pass it as the upper layer: the lower layer clears once per frame and
// the upper one paints over it. Text support is preserved.
func Overlay(c Canvas) Canvas {
	if tc, ok := c.(TextCanvas); ok {
		return textOverlay{tc}
	}
	return overlay{c}
}
