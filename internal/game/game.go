// Package game hosts the page in an ebiten window.
package game

import (
	"image"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/PiyushKingg/yushen/internal/config"
	"github.com/PiyushKingg/yushen/internal/loop"
	"github.com/PiyushKingg/yushen/internal/page"
	"github.com/PiyushKingg/yushen/internal/paint"
	"github.com/PiyushKingg/yushen/internal/snapshot"
	"github.com/PiyushKingg/yushen/internal/sound"
)

// Game implements ebiten.Game. ebiten's Update is the frame driver: each
// call dispatches the input gathered since the last one and then ticks
// the manual scheduler once.
type Game struct {
	cfg    config.Config
	page   *page.Page
	bus    *loop.Bus
	driver loop.Manual

	handles loop.Handles
	mounted bool

	field, cards *Surface
	clicker      *sound.Clicker

	// logical viewport and device scale, as last reported by Layout
	w, h    int
	dpr     float64
	resized bool

	ptr     pointer
	touches []ebiten.TouchID
	prevKey map[ebiten.Key]bool

	started time.Time
	debug   bool
	lastErr error

	// replaced in tests
	deviceScale func() float64
	savePath    func() (string, error)
}

// New builds the page from cfg. clicker may be nil for a silent page.
func New(cfg config.Config, clicker *sound.Clicker, debug bool) *Game {
	return &Game{
		cfg:         cfg,
		page:        page.New(cfg.Field, cfg.Card, cfg.Theme, cfg.Window.Seed),
		bus:         loop.NewBus(),
		clicker:     clicker,
		dpr:         1,
		prevKey:     map[ebiten.Key]bool{},
		started:     time.Now(),
		debug:       debug,
		deviceScale: monitorScale,
		savePath:    askSavePath,
	}
}

func monitorScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

func askSavePath() (string, error) {
	return zenity.SelectFileSave(
		zenity.Title("Save frame"),
		zenity.Filename("yushen.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
}

// mount attaches the page to two offscreen surfaces. A surface can only
// be acquired once Layout has reported a size.
func (g *Game) mount() {
	g.field, g.cards = NewSurface(), NewSurface()
	acquire := func(s *Surface) func() paint.Canvas {
		return func() paint.Canvas {
			if g.w <= 0 || g.h <= 0 {
				return nil
			}
			s.Resize(g.w, g.h, g.dpr)
			return s
		}
	}
	g.handles = g.page.Mount(&g.driver, g.bus, acquire(g.field), acquire(g.cards))
	if g.clicker != nil {
		h := loop.Listening()
		h.Listen(g.bus, loop.Click, func(loop.Event) { g.clicker.Click() })
		g.handles = append(g.handles, h)
	}
	g.mounted = true
	slog.Debug("game: mounted", "w", g.w, "h", g.h, "dpr", g.dpr)
}

// Close unmounts the page and silences the speaker.
func (g *Game) Close() {
	g.handles.Stop()
	g.handles = nil
	g.mounted = false
	if g.clicker != nil {
		g.clicker.Close()
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}

	if !g.mounted {
		if g.w <= 0 || g.h <= 0 {
			return nil
		}
		g.mount()
		g.resized = false
	}
	if g.resized {
		g.resized = false
		g.bus.Emit(loop.Event{Kind: loop.Resize, W: g.w, H: g.h, DPR: g.dpr})
	}

	var evs []loop.Event
	evs, g.touches = g.ptr.poll(g.w, g.h, g.dpr, g.touches)
	for _, ev := range evs {
		g.bus.Emit(ev)
	}

	if justPressed(ebiten.KeyS) {
		if err := g.saveFrame(); err != nil {
			g.lastErr = err
			slog.Error("game: save frame", "err", err)
		}
	}
	if justPressed(ebiten.KeyM) {
		g.toggleReducedMotion()
	}

	g.driver.Tick()
	return nil
}

func (g *Game) toggleReducedMotion() {
	f := g.page.Field()
	on := !f.Params().ReducedMotion
	f.SetReducedMotion(on)
	slog.Info("game: reduced motion", "on", on)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.compose(screen)
	if g.debug || g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, g.status().String(), 12, 12)
	}
}

// compose paints the background colour and both layers onto dst.
func (g *Game) compose(dst *ebiten.Image) {
	dst.Fill(g.cfg.Window.Background.NRGBA())
	for _, s := range []*Surface{g.field, g.cards} {
		if s != nil && s.Image() != nil {
			dst.DrawImage(s.Image(), nil)
		}
	}
}

func (g *Game) status() hud {
	f := g.page.Field()
	w, h := f.Size()
	px, py, in := f.Pointer()
	return hud{
		fps:       ebiten.ActualFPS(),
		frames:    g.driver.Frames(),
		particles: len(f.Particles()),
		w:         w,
		h:         h,
		clock:     f.Clock(),
		px:        px,
		py:        py,
		pointer:   in,
		uptime:    time.Since(g.started),
		reduced:   f.Params().ReducedMotion,
		err:       g.lastErr,
	}
}

// Layout reports the window in device pixels so that surfaces are drawn
// at native resolution. Size changes reach the page on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	dpr := g.deviceScale()
	if outsideWidth != g.w || outsideHeight != g.h || dpr != g.dpr {
		g.w, g.h, g.dpr = outsideWidth, outsideHeight, dpr
		g.resized = true
	}
	return int(float64(outsideWidth) * dpr), int(float64(outsideHeight) * dpr)
}

// saveFrame asks for a destination and writes the current composite.
// A cancelled dialog is not an error.
func (g *Game) saveFrame() error {
	path, err := g.savePath()
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "save dialog")
	}
	img, err := g.frame()
	if err != nil {
		return err
	}
	if err := snapshot.WritePNG(img, path); err != nil {
		return err
	}
	slog.Info("game: frame saved", "path", path)
	return nil
}

// frame reads the current composite back from the GPU.
func (g *Game) frame() (image.Image, error) {
	if g.field == nil || g.field.Image() == nil {
		return nil, errors.New("nothing rendered yet")
	}
	b := g.field.Image().Bounds()
	dst := ebiten.NewImage(b.Dx(), b.Dy())
	defer dst.Deallocate()
	g.compose(dst)
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	dst.ReadPixels(rgba.Pix)
	return rgba, nil
}
