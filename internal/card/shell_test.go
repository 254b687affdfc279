package card

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PiyushKingg/yushen/internal/loop"
	"github.com/PiyushKingg/yushen/internal/paint"
	"github.com/PiyushKingg/yushen/internal/paint/painttest"
)

var box = paint.Rect{X: 100, Y: 100, W: 200, H: 100}

func newShell(p Params) *Shell {
	s := New(p, nil)
	s.SetBounds(box)
	return s
}

func TestPositionStaysInRange(t *testing.T) {
	p := DefaultParams()
	s := newShell(p)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20000; i++ {
		if rng.Intn(200) == 0 {
			s.Click(150, 150)
		}
		s.Step()
		require.GreaterOrEqual(t, s.Position(), 0.0)
		require.Less(t, s.Position(), p.Perimeter)
	}
}

func TestWrap(t *testing.T) {
	for _, v := range []float64{0, 99.999, 100, 250.5, -0.5, 1e9} {
		got := wrap(v, 100)
		assert.GreaterOrEqual(t, got, 0.0, "v=%v", v)
		assert.Less(t, got, 100.0, "v=%v", v)
	}
}

func TestSpeedConvergesMonotonically(t *testing.T) {
	p := DefaultParams()
	p.Mode = Timer
	p.AccelFrames = 100000
	s := newShell(p)
	require.Equal(t, 0.12, s.Speed())

	s.Click(150, 150)
	assert.Equal(t, p.FastSpeed, s.TargetSpeed())
	prev := s.Speed()
	n := 0
	for math.Abs(s.Speed()-p.FastSpeed) >= 1e-3 {
		s.Step()
		n++
		require.Greater(t, s.Speed(), prev)
		require.LessOrEqual(t, s.Speed(), p.FastSpeed)
		prev = s.Speed()
		require.LessOrEqual(t, n, 400)
	}
	assert.Equal(t, Accelerating, s.State())
}

func TestLapModeCycle(t *testing.T) {
	p := DefaultParams()
	s := newShell(p)
	assert.Equal(t, Idle, s.State())

	s.Click(150, 150)
	require.Equal(t, Accelerating, s.State())

	travelled := 0.0
	for s.State() == Accelerating {
		s.Step()
		travelled += s.Speed()
		require.Less(t, travelled, 10*p.Perimeter)
	}
	assert.Equal(t, Decelerating, s.State())
	assert.GreaterOrEqual(t, travelled, p.Perimeter)
	assert.Equal(t, p.IdleSpeed, s.TargetSpeed())

	frames := 0
	for s.State() == Decelerating {
		s.Step()
		frames++
		require.LessOrEqual(t, frames, p.SettleFrames)
	}
	assert.Equal(t, Idle, s.State())
	assert.Equal(t, p.IdleSpeed, s.Speed())
}

func TestTimerMode(t *testing.T) {
	p := DefaultParams()
	p.Mode = Timer
	p.AccelFrames = 5
	s := newShell(p)
	s.Click(150, 150)
	for i := 0; i < 4; i++ {
		s.Step()
		assert.Equal(t, Accelerating, s.State())
	}
	s.Step()
	assert.Equal(t, Decelerating, s.State())
}

func TestSettleTimeout(t *testing.T) {
	p := DefaultParams()
	p.Mode = Timer
	p.AccelFrames = 0
	p.SettleDelta = 0
	p.SettleFrames = 10
	s := newShell(p)
	s.Click(150, 150)
	s.Step()
	require.Equal(t, Decelerating, s.State())
	for i := 0; i < 10; i++ {
		s.Step()
	}
	assert.Equal(t, Idle, s.State())
	assert.Equal(t, p.IdleSpeed, s.Speed())
}

func TestOutsideClick(t *testing.T) {
	t.Run("hard cancel", func(t *testing.T) {
		p := DefaultParams()
		p.HardCancelOnOutsideClick = true
		s := newShell(p)
		s.Click(150, 150)
		for i := 0; i < 10; i++ {
			s.Step()
		}
		require.Greater(t, s.Speed(), p.IdleSpeed)

		s.Click(10, 10)
		assert.Equal(t, Idle, s.State())
		assert.Equal(t, p.IdleSpeed, s.Speed())
		assert.Equal(t, p.IdleSpeed, s.TargetSpeed())
	})
	t.Run("smooth", func(t *testing.T) {
		s := newShell(DefaultParams())
		s.Click(150, 150)
		s.Step()
		s.Click(10, 10)
		assert.Equal(t, Accelerating, s.State())
	})
}

func TestClickWithoutBoundsIsNoop(t *testing.T) {
	s := New(DefaultParams(), nil)
	s.Click(0, 0)
	assert.Equal(t, Idle, s.State())
	s.PointerMove(0, 0)
	assert.False(t, s.Hovered())
}

func TestDisabledAnimation(t *testing.T) {
	p := DefaultParams()
	p.Animated = false
	s := newShell(p)
	s.Click(150, 150)
	for i := 0; i < 10; i++ {
		s.Step()
	}
	assert.Equal(t, Idle, s.State())
	assert.Equal(t, 0.0, s.Position())

	rec := &painttest.Recorder{}
	s.Paint(rec)
	assert.Equal(t, 0, rec.Count("faded-line"))
	assert.Equal(t, 1, rec.Count("fill-rect"))
}

func TestPressFeedback(t *testing.T) {
	p := DefaultParams()
	s := newShell(p)
	s.PointerDown(10, 10)
	assert.False(t, s.Pressed(), "press outside is ignored")

	s.PointerDown(150, 150)
	require.True(t, s.Pressed())
	for i := 0; i < 120; i++ {
		s.Step()
	}
	assert.InDelta(t, p.PressScale, s.Scale(), 1e-3)

	s.PointerUp(150, 150)
	for i := 0; i < 120; i++ {
		s.Step()
	}
	assert.InDelta(t, 1, s.Scale(), 1e-3)

	s.PointerDown(150, 150)
	s.PointerMove(500, 500)
	assert.False(t, s.Pressed(), "leaving the card releases")
	assert.False(t, s.Hovered())

	s.PointerMove(150, 150)
	s.PointerDown(150, 150)
	s.PointerLeave()
	assert.False(t, s.Pressed())
}

func TestLocate(t *testing.T) {
	s := New(DefaultParams(), nil)
	r := paint.Rect{X: 0, Y: 0, W: 200, H: 100}
	for _, tc := range []struct {
		pos  float64
		x, y float64
		edge Edge
	}{
		{0, 0, 0, Top},
		{12.5, 100, 0, Top},
		{25, 200, 0, Right},
		{37.5, 200, 50, Right},
		{50, 200, 100, Bottom},
		{62.5, 100, 100, Bottom},
		{75, 0, 100, Left},
		{87.5, 0, 50, Left},
		{100, 0, 0, Top},
	} {
		x, y, e := s.Locate(r, tc.pos)
		assert.InDelta(t, tc.x, x, 1e-9, "pos=%v", tc.pos)
		assert.InDelta(t, tc.y, y, 1e-9, "pos=%v", tc.pos)
		assert.Equal(t, tc.edge, e, "pos=%v", tc.pos)
	}
}

func TestPaint(t *testing.T) {
	var painted paint.Rect
	s := New(DefaultParams(), ContentFunc(func(c paint.Canvas, inner paint.Rect, alpha float64) {
		painted = inner
	}))
	s.SetBounds(box)
	rec := &painttest.Recorder{}
	s.Paint(rec)

	assert.Equal(t, 1, rec.Count("fill-rect"))
	assert.Equal(t, 1, rec.Count("stroke-rect"))
	require.Equal(t, 1, rec.Count("faded-line"))
	assert.Equal(t, box.Inset(s.Params().Padding), painted)

	for _, op := range rec.Ops {
		if op.Kind == "faded-line" {
			assert.InDelta(t, box.X, op.X, 1e-9, "idle line starts at the top-left corner")
			assert.InDelta(t, box.Y, op.Y, 1e-9)
			assert.InDelta(t, s.Params().IdleLineAlpha, op.Color.A, 1e-9)
		}
	}

	s.Click(150, 150)
	rec.Clear()
	s.Paint(rec)
	assert.Equal(t, s.Params().ActiveLineLength, s.LineLength())
	for _, op := range rec.Ops {
		if op.Kind == "faded-line" {
			assert.InDelta(t, s.Params().ActiveLineAlpha, op.Color.A, 1e-9)
		}
	}
}

func TestHiddenIdleLine(t *testing.T) {
	p := DefaultParams()
	p.HideIdleLine = true
	s := newShell(p)
	rec := &painttest.Recorder{}
	s.Paint(rec)
	assert.Equal(t, 0, rec.Count("faded-line"))

	s.PointerMove(150, 150)
	rec.Clear()
	s.Paint(rec)
	assert.Equal(t, 1, rec.Count("faded-line"))
}

func TestHoverShine(t *testing.T) {
	s := newShell(DefaultParams())
	s.SetOpacity(0.5)
	rec := &painttest.Recorder{}
	s.Paint(rec)
	assert.Zero(t, rec.Count("glow"))

	s.PointerMove(150, 130)
	x, y, ok := s.HoverPoint()
	require.True(t, ok)
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 30.0, y)

	rec.Clear()
	s.Paint(rec)
	require.Equal(t, 1, rec.Count("glow"))
	for _, op := range rec.Ops {
		if op.Kind == "glow" {
			assert.InDelta(t, 150, op.X, 1e-9)
			assert.InDelta(t, 130, op.Y, 1e-9)
			assert.InDelta(t, box.H/2, op.R, 1e-9, "radius stays within the panel")
			assert.InDelta(t, s.Params().ShineAlpha*0.5, op.Color.A, 1e-9)
		}
	}

	s.PointerLeave()
	rec.Clear()
	s.Paint(rec)
	assert.Zero(t, rec.Count("glow"))
	_, _, ok = s.HoverPoint()
	assert.False(t, ok)
}

func TestShineDisabled(t *testing.T) {
	p := DefaultParams()
	p.ShineAlpha = 0
	s := newShell(p)
	s.PointerMove(150, 150)
	rec := &painttest.Recorder{}
	s.Paint(rec)
	assert.Zero(t, rec.Count("glow"))
}

func TestMount(t *testing.T) {
	var m loop.Manual
	b := loop.NewBus()
	rec := &painttest.Recorder{W: 400, H: 300}
	s := newShell(DefaultParams())
	h := s.Mount(&m, b, func() paint.Canvas { return rec })

	b.Emit(loop.Event{Kind: loop.PointerMove, X: 150, Y: 150})
	b.Emit(loop.Event{Kind: loop.PointerDown, X: 150, Y: 150})
	b.Emit(loop.Event{Kind: loop.Click, X: 150, Y: 150})
	m.Tick()
	assert.True(t, s.Hovered())
	assert.True(t, s.Pressed())
	assert.Equal(t, Accelerating, s.State())
	assert.Equal(t, 1, rec.Clears)

	b.Emit(loop.Event{Kind: loop.PointerUp, X: 150, Y: 150})
	assert.False(t, s.Pressed())

	h.Stop()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, m.Pending())

	inert := New(DefaultParams(), nil).Mount(&m, b, func() paint.Canvas { return nil })
	assert.False(t, inert.Active())
}

func TestParseMode(t *testing.T) {
	var m Mode
	require.NoError(t, m.UnmarshalText([]byte("timer")))
	assert.Equal(t, Timer, m)
	assert.Error(t, m.UnmarshalText([]byte("forever")))
	assert.Equal(t, "accelerating", Accelerating.String())
}
