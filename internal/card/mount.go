package card

import (
	"log/slog"

	"github.com/PiyushKingg/yushen/internal/loop"
	"github.com/PiyushKingg/yushen/internal/paint"
)

// Attach registers the shell's pointer listeners on b, owned by h.
func (s *Shell) Attach(h *loop.Handle, b *loop.Bus) {
	h.Listen(b, loop.PointerMove, func(ev loop.Event) { s.PointerMove(ev.X, ev.Y) })
	h.Listen(b, loop.PointerDown, func(ev loop.Event) { s.PointerDown(ev.X, ev.Y) })
	h.Listen(b, loop.PointerUp, func(ev loop.Event) { s.PointerUp(ev.X, ev.Y) })
	h.Listen(b, loop.PointerLeave, func(loop.Event) { s.PointerLeave() })
	h.Listen(b, loop.Click, func(ev loop.Event) { s.Click(ev.X, ev.Y) })
}

// Mount runs the shell alone on its own surface, clearing it every frame.
// A nil surface leaves the shell inert.
func (s *Shell) Mount(d loop.Driver, b *loop.Bus, acquire func() paint.Canvas) *loop.Handle {
	c := acquire()
	if c == nil {
		slog.Debug("card: no drawing surface, staying inert")
		return loop.Inert()
	}
	h := loop.Animate(d, func() {
		s.Step()
		c.Clear()
		s.Paint(c)
	})
	h.Listen(b, loop.Resize, func(ev loop.Event) { c.Resize(ev.W, ev.H, ev.DPR) })
	s.Attach(h, b)
	return h
}
