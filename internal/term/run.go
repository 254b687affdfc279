package term

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/PiyushKingg/yushen/internal/config"
	"github.com/PiyushKingg/yushen/internal/loop"
	"github.com/PiyushKingg/yushen/internal/page"
	"github.com/PiyushKingg/yushen/internal/paint"
)

// wheelStep is how far one wheel notch scrolls, in logical pixels.
const wheelStep = 3 * CellH

// pointer turns tcell mouse reports into page events. tcell reports
// button state, not transitions, so the previous state is kept.
type pointer struct {
	x, y float64
	seen bool
	down bool
}

func (p *pointer) translate(ev *tcell.EventMouse) []loop.Event {
	col, row := ev.Position()
	x, y := (float64(col)+0.5)*CellW, (float64(row)+0.5)*CellH
	btn := ev.Buttons()

	var out []loop.Event
	if !p.seen || x != p.x || y != p.y {
		p.x, p.y, p.seen = x, y, true
		out = append(out, loop.Event{Kind: loop.PointerMove, X: x, Y: y})
	}
	if btn&tcell.WheelUp != 0 {
		out = append(out, loop.Event{Kind: loop.Wheel, X: x, Y: -wheelStep})
	}
	if btn&tcell.WheelDown != 0 {
		out = append(out, loop.Event{Kind: loop.Wheel, X: x, Y: wheelStep})
	}
	down := btn&tcell.Button1 != 0
	switch {
	case down && !p.down:
		out = append(out, loop.Event{Kind: loop.PointerDown, X: x, Y: y})
	case !down && p.down:
		out = append(out,
			loop.Event{Kind: loop.PointerUp, X: x, Y: y},
			loop.Event{Kind: loop.Click, X: x, Y: y},
		)
	}
	p.down = down
	return out
}

func resizeEvent(s tcell.Screen) loop.Event {
	cols, rows := s.Size()
	return loop.Event{Kind: loop.Resize, W: cols * CellW, H: rows * CellH, DPR: 1}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Run drives the page on screen until ctx is done or the user quits with
// Esc, q or Ctrl-C. The caller owns screen: Init before, Fini after.
func Run(ctx context.Context, screen tcell.Screen, cfg config.Config) error {
	screen.EnableMouse()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bus := loop.NewBus()
	tk := loop.NewTicker(time.Second/config.TPS, bus)

	c := NewCanvas(screen)
	c.Background = cfg.Window.Background
	p := page.New(cfg.Field, cfg.Card, cfg.Theme, cfg.Window.Seed)
	hs := p.Mount(tk, bus,
		func() paint.Canvas { return c },
		func() paint.Canvas { return paint.Overlay(c) },
	)
	// requested last, so it runs after both layers have painted
	hs = append(hs, loop.Animate(tk, c.Flush))

	go func() {
		var ptr pointer
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					cancel()
				}
			case *tcell.EventResize:
				screen.Sync()
				tk.Post(ctx, resizeEvent(screen))
			case *tcell.EventMouse:
				for _, e := range ptr.translate(ev) {
					tk.Post(ctx, e)
				}
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	cols, rows := screen.Size()
	slog.Debug("term: running", "cols", cols, "rows", rows)
	err := tk.Run(ctx)
	hs.Stop()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
