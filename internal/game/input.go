package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/PiyushKingg/yushen/internal/loop"
)

// wheelStep converts one wheel notch to logical pixels of scroll.
const wheelStep = 40

// sample is one frame's raw pointer state in logical pixels.
type sample struct {
	x, y     float64
	inside   bool
	pressed  bool
	released bool
	wheel    float64
}

// pointer tracks the cursor between frames and emits page events on
// change. ebiten has no leave notification, so leaving is inferred from
// the cursor falling outside the viewport.
type pointer struct {
	x, y   float64
	inside bool
	down   bool
}

func (p *pointer) update(s sample) []loop.Event {
	var out []loop.Event
	switch {
	case s.inside && (!p.inside || s.x != p.x || s.y != p.y):
		out = append(out, loop.Event{Kind: loop.PointerMove, X: s.x, Y: s.y})
	case !s.inside && p.inside:
		out = append(out, loop.Event{Kind: loop.PointerLeave})
	}
	p.x, p.y, p.inside = s.x, s.y, s.inside

	if s.pressed && s.inside {
		p.down = true
		out = append(out, loop.Event{Kind: loop.PointerDown, X: s.x, Y: s.y})
	}
	if s.released && p.down {
		p.down = false
		out = append(out, loop.Event{Kind: loop.PointerUp, X: s.x, Y: s.y})
		if s.inside {
			out = append(out, loop.Event{Kind: loop.Click, X: s.x, Y: s.y})
		}
	}
	if s.wheel != 0 {
		out = append(out, loop.Event{Kind: loop.Wheel, X: s.x, Y: -s.wheel * wheelStep})
	}
	return out
}

// tap turns a touch that just started into a full click sequence.
func tap(x, y float64) []loop.Event {
	return []loop.Event{
		{Kind: loop.PointerMove, X: x, Y: y},
		{Kind: loop.PointerDown, X: x, Y: y},
		{Kind: loop.PointerUp, X: x, Y: y},
		{Kind: loop.Click, X: x, Y: y},
	}
}

// poll reads ebiten's input state. scale maps layout pixels back to
// logical pixels.
func (p *pointer) poll(w, h int, scale float64, touches []ebiten.TouchID) ([]loop.Event, []ebiten.TouchID) {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx)/scale, float64(cy)/scale
	_, dy := ebiten.Wheel()
	out := p.update(sample{
		x: x, y: y,
		inside:   x >= 0 && y >= 0 && x < float64(w) && y < float64(h),
		pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		wheel:    dy,
	})
	touches = inpututil.AppendJustPressedTouchIDs(touches[:0])
	for _, id := range touches {
		tx, ty := ebiten.TouchPosition(id)
		out = append(out, tap(float64(tx)/scale, float64(ty)/scale)...)
	}
	return out, touches
}
