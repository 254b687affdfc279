// Package painttest provides a paint.Canvas that records draw calls.
package painttest

import (
	"fmt"

	"github.com/PiyushKingg/yushen/internal/paint"
)

// Op is one recorded draw call.
type Op struct {
	Kind  string
	X, Y  float64
	R     float64
	Color paint.Color
}

// Recorder records draw calls instead of rasterising them.
type Recorder struct {
	W, H    int
	DPR     float64
	Ops     []Op
	Clears  int
	Resizes int
}

var _ paint.TextCanvas = (*Recorder)(nil)

func (r *Recorder) Resize(w, h int, dpr float64) {
	r.W, r.H, r.DPR = w, h, dpr
	r.Resizes++
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear() {
	r.Clears++
	r.Ops = r.Ops[:0]
}

func (r *Recorder) FillCircle(x, y, rad float64, c paint.Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill-circle", X: x, Y: y, R: rad, Color: c})
}

func (r *Recorder) StrokeCircle(x, y, rad, _ float64, c paint.Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke-circle", X: x, Y: y, R: rad, Color: c})
}

func (r *Recorder) Line(x1, y1, _, _, _ float64, c paint.Color) {
	r.Ops = append(r.Ops, Op{Kind: "line", X: x1, Y: y1, Color: c})
}

func (r *Recorder) FadedLine(x1, y1, x2, y2, _ float64, c paint.Color) {
	r.Ops = append(r.Ops, Op{Kind: "faded-line", X: (x1 + x2) / 2, Y: (y1 + y2) / 2, Color: c})
}

func (r *Recorder) Glow(x, y, rad float64, c paint.Color) {
	r.Ops = append(r.Ops, Op{Kind: "glow", X: x, Y: y, R: rad, Color: c})
}

func (r *Recorder) FillRoundRect(rc paint.Rect, rad float64, c paint.Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill-rect", X: rc.X, Y: rc.Y, R: rad, Color: c})
}

func (r *Recorder) StrokeRoundRect(rc paint.Rect, rad, _ float64, c paint.Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke-rect", X: rc.X, Y: rc.Y, R: rad, Color: c})
}

func (r *Recorder) Text(s string, x, y float64, c paint.Color) {
	r.Ops = append(r.Ops, Op{Kind: "text:" + s, X: x, Y: y, Color: c})
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) String() string {
	return fmt.Sprintf("recorder %dx%d ops=%d", r.W, r.H, len(r.Ops))
}
