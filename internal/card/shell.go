// Package card implements the glass card shell: a translucent panel around
// arbitrary content with a highlight line that creeps around its border and
// races a lap when clicked.
package card

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/PiyushKingg/yushen/internal/paint"
)

// State is the border animation phase.
type State int

const (
	Idle State = iota
	Accelerating
	Decelerating
)

func (s State) String() string {
	switch s {
	case Accelerating:
		return "accelerating"
	case Decelerating:
		return "decelerating"
	}
	return "idle"
}

// Edge names a side of the card in travel order.
type Edge int

const (
	Top Edge = iota
	Right
	Bottom
	Left
)

// Content is whatever the card wraps. alpha is the card's entrance opacity.
type Content interface {
	Paint(c paint.Canvas, inner paint.Rect, alpha float64)
}

// ContentFunc adapts a function to Content.
type ContentFunc func(c paint.Canvas, inner paint.Rect, alpha float64)

func (f ContentFunc) Paint(c paint.Canvas, inner paint.Rect, alpha float64) { f(c, inner, alpha) }

// Shell is one card instance.
type Shell struct {
	params  Params
	content Content
	bounds  paint.Rect
	opacity float64

	pos, speed, target float64
	state              State
	sinceClick         float64
	inState            int

	pressed, hovered bool
	// pointer relative to the card's top-left, valid while hovered
	hoverX, hoverY float64
	spring           harmonica.Spring
	scale, scaleVel  float64
}

func New(p Params, content Content) *Shell {
	if p.Perimeter <= 0 {
		p.Perimeter = DefaultParams().Perimeter
	}
	return &Shell{
		params:  p,
		content: content,
		opacity: 1,
		speed:   p.IdleSpeed,
		target:  p.IdleSpeed,
		spring:  harmonica.NewSpring(harmonica.FPS(60), p.SpringFrequency, p.SpringDamping),
		scale:   1,
	}
}

func (s *Shell) Params() Params       { return s.params }
func (s *Shell) State() State         { return s.state }
func (s *Shell) Position() float64    { return s.pos }
func (s *Shell) Speed() float64       { return s.speed }
func (s *Shell) TargetSpeed() float64 { return s.target }
func (s *Shell) Scale() float64       { return s.scale }
func (s *Shell) Pressed() bool        { return s.pressed }
func (s *Shell) Hovered() bool        { return s.hovered }
func (s *Shell) Bounds() paint.Rect   { return s.bounds }

// SetBounds records the card's measured rectangle. An empty rect means the
// card has not been laid out yet.
func (s *Shell) SetBounds(r paint.Rect) { s.bounds = r }

// SetOpacity sets the entrance opacity applied to the whole card.
func (s *Shell) SetOpacity(a float64) { s.opacity = paint.Clamp01(a) }

func (s *Shell) Opacity() float64 { return s.opacity }

// Accelerated reports whether the line is running faster than its idle creep.
func (s *Shell) Accelerated() bool { return s.state != Idle }

// Step advances the border animation and press feedback by one frame.
func (s *Shell) Step() {
	p := s.params
	s.scale, s.scaleVel = s.spring.Update(s.scale, s.scaleVel, s.pressTarget())

	if !p.Animated {
		return
	}
	s.speed += (s.target - s.speed) * p.Smoothing
	s.pos = wrap(s.pos+s.speed, p.Perimeter)
	s.sinceClick += s.speed
	s.inState++

	switch s.state {
	case Accelerating:
		done := s.sinceClick >= p.Perimeter
		if p.Mode == Timer {
			done = s.inState >= p.AccelFrames
		}
		if done {
			s.enter(Decelerating)
			s.target = p.IdleSpeed
		}
	case Decelerating:
		if math.Abs(s.speed-p.IdleSpeed) < p.SettleDelta || s.inState >= p.SettleFrames {
			s.enter(Idle)
			s.speed = p.IdleSpeed
		}
	}
}

func (s *Shell) enter(st State) {
	s.state = st
	s.inState = 0
}

func (s *Shell) pressTarget() float64 {
	if s.pressed {
		return s.params.PressScale
	}
	return 1
}

// wrap reduces v into [0, n).
func wrap(v, n float64) float64 {
	v = math.Mod(v, n)
	if v < 0 {
		v += n
	}
	if v >= n {
		v = 0
	}
	return v
}

// Click handles a click anywhere in the viewport. Inside the card it starts
// a fast lap; outside it hard-cancels when configured to. Without measured
// bounds it does nothing.
func (s *Shell) Click(x, y float64) {
	if s.bounds.Empty() || !s.params.Animated {
		return
	}
	if s.bounds.Contains(x, y) {
		s.enter(Accelerating)
		s.target = s.params.FastSpeed
		s.sinceClick = 0
		return
	}
	if s.params.HardCancelOnOutsideClick && s.state != Idle {
		s.enter(Idle)
		s.speed = s.params.IdleSpeed
		s.target = s.params.IdleSpeed
	}
}

func (s *Shell) PointerDown(x, y float64) {
	if s.bounds.Contains(x, y) {
		s.pressed = true
	}
}

func (s *Shell) PointerUp(float64, float64) { s.pressed = false }

// PointerMove updates hover; leaving the bounds also releases a press.
func (s *Shell) PointerMove(x, y float64) {
	if s.bounds.Empty() {
		return
	}
	s.hovered = s.bounds.Contains(x, y)
	if !s.hovered {
		s.pressed = false
		return
	}
	s.hoverX, s.hoverY = x-s.bounds.X, y-s.bounds.Y
}

// HoverPoint returns the pointer relative to the card's top-left corner
// while the card is hovered.
func (s *Shell) HoverPoint() (x, y float64, ok bool) {
	return s.hoverX, s.hoverY, s.hovered
}

func (s *Shell) PointerLeave() {
	s.hovered = false
	s.pressed = false
}

// Locate maps a border position onto the card outline r. Each edge takes an
// equal quarter of the perimeter range regardless of its pixel length.
func (s *Shell) Locate(r paint.Rect, pos float64) (x, y float64, e Edge) {
	q := s.params.Perimeter / 4
	pos = wrap(pos, s.params.Perimeter)
	e = Edge(math.Min(3, math.Floor(pos/q)))
	t := (pos - float64(e)*q) / q
	switch e {
	case Top:
		return r.X + t*r.W, r.Y, e
	case Right:
		return r.X + r.W, r.Y + t*r.H, e
	case Bottom:
		return r.X + r.W - t*r.W, r.Y + r.H, e
	default:
		return r.X, r.Y + r.H - t*r.H, e
	}
}
