package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/PiyushKingg/yushen/internal/config"
	"github.com/PiyushKingg/yushen/internal/loop"
	"github.com/PiyushKingg/yushen/internal/page"
	"github.com/PiyushKingg/yushen/internal/paint"
)

// Script returns the input events to emit before frame n.
type Script func(n int) []loop.Event

type Options struct {
	Width, Height int
	DPR           float64
	Frames        int
	// Every saves one PNG per Every frames; the last frame is always saved.
	Every  int
	Dir    string
	Script Script
}

// Orbit moves the pointer on an ellipse around the viewport centre and
// clicks every clickEvery frames. It is the default session.
func Orbit(w, h, clickEvery int) Script {
	cx, cy := float64(w)/2, float64(h)/2
	rx, ry := float64(w)*0.3, float64(h)*0.25
	return func(n int) []loop.Event {
		a := float64(n) * 0.04
		x, y := cx+rx*math.Cos(a), cy+ry*math.Sin(2*a)
		evs := []loop.Event{{Kind: loop.PointerMove, X: x, Y: y}}
		if clickEvery > 0 && n > 0 && n%clickEvery == 0 {
			evs = append(evs,
				loop.Event{Kind: loop.PointerDown, X: x, Y: y},
				loop.Event{Kind: loop.PointerUp, X: x, Y: y},
				loop.Event{Kind: loop.Click, X: x, Y: y},
			)
		}
		return evs
	}
}

// Render plays a scripted session against a fresh page and writes
// frame-NNNN.png files into o.Dir. It returns the written paths.
func Render(ctx context.Context, cfg config.Config, o Options) ([]string, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return nil, errors.Errorf("snapshot size %dx%d must be positive", o.Width, o.Height)
	}
	if o.Frames <= 0 {
		return nil, errors.Errorf("frame count %d must be positive", o.Frames)
	}
	if o.Every <= 0 {
		o.Every = 1
	}
	if o.Script == nil {
		o.Script = Orbit(o.Width, o.Height, 45)
	}
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create output dir")
	}

	c := NewCanvas(o.Width, o.Height, o.DPR)
	c.Background = cfg.Window.Background

	var m loop.Manual
	bus := loop.NewBus()
	p := page.New(cfg.Field, cfg.Card, cfg.Theme, cfg.Window.Seed)
	hs := p.Mount(&m, bus,
		func() paint.Canvas { return c },
		func() paint.Canvas { return paint.Overlay(c) },
	)
	defer hs.Stop()

	var out []string
	for n := 0; n < o.Frames; n++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		for _, ev := range o.Script(n) {
			bus.Emit(ev)
		}
		m.Tick()
		if n%o.Every != 0 && n != o.Frames-1 {
			continue
		}
		path := filepath.Join(o.Dir, fmt.Sprintf("frame-%04d.png", n))
		if err := c.SavePNG(path); err != nil {
			return out, err
		}
		out = append(out, path)
	}
	slog.Info("snapshot: done", "frames", o.Frames, "written", len(out), "dir", o.Dir)
	return out, nil
}
