package field

import (
	"math"

	"github.com/PiyushKingg/yushen/internal/paint"
)

// Paint draws the current frame: ripples, links, then particles.
func (f *Field) Paint(c paint.Canvas) {
	p := f.params
	c.Clear()

	for _, r := range f.ripples {
		c.StrokeCircle(r.X, r.Y, r.Radius, 1, p.Color.WithAlpha(r.Opacity))
		if p.RippleRings > 1 && r.Radius > 10 {
			c.StrokeCircle(r.X, r.Y, r.Radius*0.6, 0.5, p.Color.WithAlpha(r.Opacity*0.5))
		}
	}

	if p.Links && p.LinkDistance > 0 {
		for i := range f.particles {
			a := &f.particles[i]
			for j := i + 1; j < len(f.particles); j++ {
				b := &f.particles[j]
				d := math.Hypot(a.X-b.X, a.Y-b.Y)
				if d >= p.LinkDistance {
					continue
				}
				c.Line(a.X, a.Y, b.X, b.Y, 0.5, p.Color.WithAlpha(p.LinkOpacity*(1-d/p.LinkDistance)))
			}
		}
	}

	for i := range f.particles {
		d := &f.particles[i]
		o := f.RenderOpacity(d)
		r := d.Radius * d.Scale
		if f.proximity(d, p.GlowRadius) > 0 || d.Scale > 1.01 {
			c.Glow(d.X, d.Y, r*2.5, p.Color.WithAlpha(o))
		}
		c.FillCircle(d.X, d.Y, r, p.Color.WithAlpha(o*1.2))
	}
}
