package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PiyushKingg/yushen/internal/config"
	"github.com/PiyushKingg/yushen/internal/loop"
	"github.com/PiyushKingg/yushen/internal/paint"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, col, row int) rune {
	r, _, _, _ := s.GetContent(col, row)
	return r
}

func TestCanvasSizeFollowsScreen(t *testing.T) {
	c := NewCanvas(newScreen(t, 40, 10))
	w, h := c.Size()
	assert.Equal(t, 40*CellW, w)
	assert.Equal(t, 10*CellH, h)

	c.Resize(3, 3, 2)
	w, h = c.Size()
	assert.Equal(t, CellW, w)
	assert.Equal(t, CellH, h)
}

func TestCanvasPlotsAndFlushes(t *testing.T) {
	s := newScreen(t, 20, 6)
	c := NewCanvas(s)
	c.Clear()
	c.FillCircle(2.5*CellW, 1.5*CellH, 1.5, paint.White)
	c.FillCircle(4.5*CellW, 1.5*CellH, 2.5, paint.White)
	c.FillCircle(-5, -5, 2, paint.White)
	c.Flush()

	assert.Equal(t, '·', runeAt(s, 2, 1))
	assert.Equal(t, '•', runeAt(s, 4, 1))
	assert.Equal(t, ' ', runeAt(s, 0, 0))
}

func TestCanvasTransparentIsSkipped(t *testing.T) {
	s := newScreen(t, 10, 4)
	c := NewCanvas(s)
	c.FillCircle(CellW/2, CellH/2, 1, paint.Transparent)
	c.Flush()
	assert.Equal(t, ' ', runeAt(s, 0, 0))
}

func TestCanvasText(t *testing.T) {
	s := newScreen(t, 20, 4)
	c := NewCanvas(s)
	c.Text("hey", 2*CellW, CellH, paint.White)
	c.Flush()
	assert.Equal(t, 'h', runeAt(s, 2, 1))
	assert.Equal(t, 'e', runeAt(s, 3, 1))
	assert.Equal(t, 'y', runeAt(s, 4, 1))
}

func TestCanvasRoundRectCorners(t *testing.T) {
	s := newScreen(t, 20, 8)
	c := NewCanvas(s)
	c.StrokeRoundRect(paint.Rect{X: CellW, Y: CellH, W: 6 * CellW, H: 4 * CellH}, 4, 1, paint.White)
	c.Flush()
	assert.Equal(t, '╭', runeAt(s, 1, 1))
	assert.Equal(t, '╮', runeAt(s, 6, 1))
	assert.Equal(t, '╰', runeAt(s, 1, 4))
	assert.Equal(t, '╯', runeAt(s, 6, 4))
	assert.Equal(t, '─', runeAt(s, 3, 1))
	assert.Equal(t, '│', runeAt(s, 1, 2))
}

func TestLineGlyph(t *testing.T) {
	assert.Equal(t, '─', lineGlyph(100, 0, false))
	assert.Equal(t, '┃', lineGlyph(0, 100, true))
	assert.Equal(t, '╲', lineGlyph(CellW*4, CellH*4, false))
	assert.Equal(t, '╱', lineGlyph(-CellW*4, CellH*4, false))
}

func TestPointerTranslate(t *testing.T) {
	var p pointer

	evs := p.translate(tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone))
	require.Len(t, evs, 1)
	assert.Equal(t, loop.PointerMove, evs[0].Kind)
	assert.Equal(t, 3.5*CellW, evs[0].X)
	assert.Equal(t, 2.5*CellH, evs[0].Y)

	evs = p.translate(tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone))
	require.Len(t, evs, 1)
	assert.Equal(t, loop.PointerDown, evs[0].Kind)

	evs = p.translate(tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone))
	require.Len(t, evs, 2)
	assert.Equal(t, loop.PointerUp, evs[0].Kind)
	assert.Equal(t, loop.Click, evs[1].Kind)

	evs = p.translate(tcell.NewEventMouse(3, 2, tcell.WheelDown, tcell.ModNone))
	require.Len(t, evs, 1)
	assert.Equal(t, loop.Wheel, evs[0].Kind)
	assert.Equal(t, float64(wheelStep), evs[0].Y)
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newScreen(t, 60, 30)
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(150*time.Millisecond, cancel)

	done := make(chan error, 1)
	go func() { done <- Run(ctx, s, config.Default()) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
