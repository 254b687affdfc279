// Package field simulates the decorative particle background: a set of dots
// springing back to their anchors while the pointer pushes or pulls them,
// plus click ripples.
package field

import (
	"math"
	"math/rand"
)

// Particle is one rendered dot.
type Particle struct {
	X, Y         float64
	BaseX, BaseY float64
	VX, VY       float64
	Radius       float64
	Opacity      float64
	// Scale is the transient "pop" factor set by clicks; it eases back to 1.
	Scale float64
	Phase float64
}

// Ripple is an expanding ring left by a click.
type Ripple struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Opacity   float64
}

// Field owns one particle set. All methods must be called from the host's
// loop goroutine.
type Field struct {
	params Params
	rng    *rand.Rand

	w, h      float64
	particles []Particle
	ripples   []Ripple

	px, py     float64
	hasPointer bool

	clock  float64
	frames int64
}

func New(p Params, seed int64) *Field {
	return &Field{
		params: p,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (f *Field) Params() Params { return f.params }

// SetReducedMotion toggles the motion-reduction preference at runtime.
func (f *Field) SetReducedMotion(on bool) { f.params.ReducedMotion = on }

// Particles returns the live particle slice. Callers must not retain it
// across Resize.
func (f *Field) Particles() []Particle { return f.particles }

func (f *Field) Ripples() []Ripple { return f.ripples }

func (f *Field) Size() (float64, float64) { return f.w, f.h }

func (f *Field) Clock() float64 { return f.clock }

func (f *Field) Frames() int64 { return f.frames }

// Resize discards every particle and builds a fresh set for a w×h viewport.
func (f *Field) Resize(w, h float64) {
	f.w, f.h = w, h
	f.particles = nil
	if w <= 0 || h <= 0 {
		return
	}
	switch f.params.Layout {
	case Grid:
		f.tile()
	default:
		f.scatter()
	}
}

// Count returns how many particles a w×h viewport gets.
func (p Params) Count(w, h float64) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	if p.Layout == Grid {
		if p.Spacing <= 0 {
			return 0
		}
		cols := int(math.Ceil(w/p.Spacing)) + 2
		rows := int(math.Ceil(h/p.Spacing)) + 2
		return cols * rows
	}
	if p.AreaDivisor <= 0 {
		return 0
	}
	n := int(math.Floor(w * h / p.AreaDivisor))
	if n > p.Cap {
		n = p.Cap
	}
	return n
}

func (f *Field) tile() {
	s := f.params.Spacing
	if s <= 0 {
		return
	}
	cols := int(math.Ceil(f.w/s)) + 2
	rows := int(math.Ceil(f.h/s)) + 2
	f.particles = make([]Particle, 0, cols*rows)
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			f.particles = append(f.particles, f.spawn(float64(i)*s, float64(j)*s))
		}
	}
}

func (f *Field) scatter() {
	n := f.params.Count(f.w, f.h)
	f.particles = make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		f.particles = append(f.particles, f.spawn(f.rng.Float64()*f.w, f.rng.Float64()*f.h))
	}
}

func (f *Field) spawn(x, y float64) Particle {
	p := f.params
	return Particle{
		X: x, Y: y,
		BaseX: x, BaseY: y,
		VX:      (f.rng.Float64() - 0.5) * p.Drift,
		VY:      (f.rng.Float64() - 0.5) * p.Drift,
		Radius:  p.MinRadius + f.rng.Float64()*(p.MaxRadius-p.MinRadius),
		Opacity: p.MinOpacity + f.rng.Float64()*(p.MaxOpacity-p.MinOpacity),
		Scale:   1,
		Phase:   f.rng.Float64() * 2 * math.Pi,
	}
}

func (f *Field) PointerMove(x, y float64) {
	f.px, f.py = x, y
	f.hasPointer = true
}

func (f *Field) PointerLeave() { f.hasPointer = false }

// Pointer returns the tracked pointer position, if any.
func (f *Field) Pointer() (x, y float64, ok bool) { return f.px, f.py, f.hasPointer }

// Click starts a ripple at (x, y) and kicks nearby particles away from it.
func (f *Field) Click(x, y float64) {
	p := f.params
	f.ripples = append(f.ripples, Ripple{
		X: x, Y: y,
		MaxRadius: p.RippleMaxRadius,
		Opacity:   p.RippleOpacity,
	})
	if p.ClickRadius <= 0 {
		return
	}
	for i := range f.particles {
		d := &f.particles[i]
		dx, dy := d.X-x, d.Y-y
		dist := math.Hypot(dx, dy)
		if dist >= p.ClickRadius {
			continue
		}
		force := 1 - dist/p.ClickRadius
		if pop := 1 + (p.ExpandScale-1)*force; pop > d.Scale {
			d.Scale = pop
		}
		if dist == 0 || p.ReducedMotion {
			continue
		}
		d.VX += dx / dist * force * p.ClickImpulse
		d.VY += dy / dist * force * p.ClickImpulse
	}
}

// leashBounce is the fraction of speed kept when the leash reverses a particle.
const leashBounce = 0.9

// Step advances the simulation by one frame.
func (f *Field) Step() {
	p := f.params
	f.clock += p.TimeStep
	f.frames++

	kept := f.ripples[:0]
	for _, r := range f.ripples {
		r.Radius = math.Min(r.Radius+p.RippleGrowth, math.Max(r.MaxRadius, r.Radius))
		r.Opacity *= p.RippleDecay
		if r.Opacity < p.RippleCutoff {
			continue
		}
		kept = append(kept, r)
	}
	f.ripples = kept

	for i := range f.particles {
		d := &f.particles[i]
		if !p.ReducedMotion {
			fx, fy := f.pointerForce(d)
			d.VX += fx
			d.VY += fy
			if p.Leash > 0 && math.Hypot(d.X-d.BaseX, d.Y-d.BaseY) > p.Leash {
				d.VX *= -leashBounce
				d.VY *= -leashBounce
			}
			d.VX += (d.BaseX - d.X) * p.Spring
			d.VY += (d.BaseY - d.Y) * p.Spring
			d.VX *= p.Damping
			d.VY *= p.Damping
			d.X += d.VX
			d.Y += d.VY
			if p.Wrap {
				f.wrap(d)
			}
		}
		d.Scale += (1 - d.Scale) * p.ExpandSmoothing
	}
}

// pointerForce returns the velocity change the pointer applies to d this
// frame. It is zero outside ForceRadius and when the pointer sits exactly
// on the particle.
func (f *Field) pointerForce(d *Particle) (float64, float64) {
	p := f.params
	if !f.hasPointer || p.ForceRadius <= 0 {
		return 0, 0
	}
	dx, dy := f.px-d.X, f.py-d.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 || dist >= p.ForceRadius {
		return 0, 0
	}
	force := (1 - dist/p.ForceRadius) * p.ForceStrength
	if p.Interaction == Repel {
		force = -force
	}
	return dx / dist * force, dy / dist * force
}

func (f *Field) wrap(d *Particle) {
	m := f.params.WrapMargin
	switch {
	case d.X < -m:
		d.X = f.w + m
		d.BaseX = d.X
	case d.X > f.w+m:
		d.X = -m
		d.BaseX = d.X
	}
	switch {
	case d.Y < -m:
		d.Y = f.h + m
		d.BaseY = d.Y
	case d.Y > f.h+m:
		d.Y = -m
		d.BaseY = d.Y
	}
}

// proximity returns 1 at the pointer falling linearly to 0 at radius.
func (f *Field) proximity(d *Particle, radius float64) float64 {
	if !f.hasPointer || radius <= 0 {
		return 0
	}
	dist := math.Hypot(f.px-d.X, f.py-d.Y)
	if dist >= radius {
		return 0
	}
	return 1 - dist/radius
}

// RenderOpacity combines base opacity, the shared pulse and the pointer
// glow boost, clamped to [0, 1].
func (f *Field) RenderOpacity(d *Particle) float64 {
	p := f.params
	o := d.Opacity
	if !p.ReducedMotion {
		o += p.PulseAmplitude * math.Sin(f.clock*p.PulseSpeed+d.Phase)
	}
	o += p.GlowBoost * f.proximity(d, p.GlowRadius)
	return math.Max(0, math.Min(1, o))
}
