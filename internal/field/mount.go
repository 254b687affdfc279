package field

import (
	"log/slog"

	"github.com/PiyushKingg/yushen/internal/loop"
	"github.com/PiyushKingg/yushen/internal/paint"
)

// Mount attaches f to a host. acquire returns the drawing surface; when it
// returns nil the field stays inert: no listeners, no frames. Stop on the
// returned handle unmounts.
func (f *Field) Mount(d loop.Driver, b *loop.Bus, acquire func() paint.Canvas) *loop.Handle {
	c := acquire()
	if c == nil {
		slog.Debug("field: no drawing surface, staying inert")
		return loop.Inert()
	}
	if w, h := c.Size(); w > 0 && h > 0 {
		f.Resize(float64(w), float64(h))
	}

	h := loop.Animate(d, func() {
		f.Step()
		f.Paint(c)
	})
	h.Listen(b, loop.Resize, func(ev loop.Event) {
		c.Resize(ev.W, ev.H, ev.DPR)
		f.Resize(float64(ev.W), float64(ev.H))
		slog.Debug("field: resized", "w", ev.W, "h", ev.H, "dpr", ev.DPR, "particles", len(f.particles))
	})
	h.Listen(b, loop.PointerMove, func(ev loop.Event) { f.PointerMove(ev.X, ev.Y) })
	h.Listen(b, loop.PointerLeave, func(loop.Event) { f.PointerLeave() })
	h.Listen(b, loop.Click, func(ev loop.Event) { f.Click(ev.X, ev.Y) })
	slog.Debug("field: mounted", "layout", f.params.Layout, "interaction", f.params.Interaction)
	return h
}
