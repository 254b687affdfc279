// Package snapshot renders the page headlessly with gg and writes frames
// as PNG files.
package snapshot

import (
	"image"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"

	"github.com/PiyushKingg/yushen/internal/paint"
)

// Canvas is a software raster surface. Coordinates are logical pixels and
// are multiplied by the device pixel ratio before they reach gg, because
// gradient brushes are sampled in pixel space.
type Canvas struct {
	dc   *gg.Context
	w, h int
	dpr  float64

	// Background is what Clear fills with. The zero value clears to
	// transparent.
	Background paint.Color
}

func NewCanvas(w, h int, dpr float64) *Canvas {
	c := &Canvas{}
	c.Resize(w, h, dpr)
	return c
}

func rgba(c paint.Color) gg.RGBA {
	return gg.RGBA2(c.R, c.G, c.B, c.A)
}

func (c *Canvas) Resize(w, h int, dpr float64) {
	if dpr <= 0 {
		dpr = 1
	}
	w, h = max(w, 1), max(h, 1)
	pw, ph := int(float64(w)*dpr), int(float64(h)*dpr)
	c.w, c.h, c.dpr = w, h, dpr
	if c.dc == nil {
		c.dc = gg.NewContext(pw, ph)
		return
	}
	if err := c.dc.Resize(pw, ph); err != nil {
		slog.Warn("snapshot: resize", "w", pw, "h", ph, "err", err)
	}
}

func (c *Canvas) Size() (int, int) { return c.w, c.h }

func (c *Canvas) Clear() {
	c.dc.ClearWithColor(rgba(c.Background))
}

func (c *Canvas) FillCircle(x, y, r float64, col paint.Color) {
	s := c.dpr
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.DrawCircle(x*s, y*s, r*s)
	_ = c.dc.Fill()
}

func (c *Canvas) StrokeCircle(x, y, r, width float64, col paint.Color) {
	s := c.dpr
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.SetLineWidth(width * s)
	c.dc.DrawCircle(x*s, y*s, r*s)
	_ = c.dc.Stroke()
}

func (c *Canvas) Line(x1, y1, x2, y2, width float64, col paint.Color) {
	s := c.dpr
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.SetLineWidth(width * s)
	c.dc.DrawLine(x1*s, y1*s, x2*s, y2*s)
	_ = c.dc.Stroke()
}

func (c *Canvas) FadedLine(x1, y1, x2, y2, width float64, col paint.Color) {
	s := c.dpr
	edge := rgba(col.WithAlpha(0))
	c.dc.SetStrokeBrush(gg.NewLinearGradientBrush(x1*s, y1*s, x2*s, y2*s).
		AddColorStop(0, edge).
		AddColorStop(0.5, rgba(col)).
		AddColorStop(1, edge))
	c.dc.SetLineWidth(width * s)
	c.dc.DrawLine(x1*s, y1*s, x2*s, y2*s)
	_ = c.dc.Stroke()
}

func (c *Canvas) Glow(x, y, r float64, col paint.Color) {
	if r <= 0 {
		return
	}
	s := c.dpr
	c.dc.SetFillBrush(gg.NewRadialGradientBrush(x*s, y*s, 0, r*s).
		AddColorStop(0, rgba(col)).
		AddColorStop(1, rgba(col.WithAlpha(0))))
	c.dc.DrawCircle(x*s, y*s, r*s)
	_ = c.dc.Fill()
}

func (c *Canvas) FillRoundRect(r paint.Rect, radius float64, col paint.Color) {
	s := c.dpr
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.DrawRoundedRectangle(r.X*s, r.Y*s, r.W*s, r.H*s, radius*s)
	_ = c.dc.Fill()
}

func (c *Canvas) StrokeRoundRect(r paint.Rect, radius, width float64, col paint.Color) {
	s := c.dpr
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.SetLineWidth(width * s)
	c.dc.DrawRoundedRectangle(r.X*s, r.Y*s, r.W*s, r.H*s, radius*s)
	_ = c.dc.Stroke()
}

// Image returns the current raster at device resolution.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

func (c *Canvas) SavePNG(path string) error {
	return errors.Wrapf(c.dc.SavePNG(path), "save %s", path)
}

// WritePNG encodes any image through gg. The desktop host uses it for
// frames read back from the GPU.
func WritePNG(img image.Image, path string) error {
	dc := gg.NewContextForImage(img)
	defer dc.Close()
	return errors.Wrapf(dc.SavePNG(path), "save %s", path)
}
