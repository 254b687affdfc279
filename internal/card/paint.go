package card

import (
	"math"

	"github.com/PiyushKingg/yushen/internal/paint"
)

// Paint draws the panel, its border, the travelling line and the content.
// It does not clear the surface; several cards share one overlay.
func (s *Shell) Paint(c paint.Canvas) {
	if s.bounds.Empty() || s.opacity <= 0 {
		return
	}
	p := s.params
	r := s.bounds.Scale(s.scale)

	panel, border := p.PanelAlpha, p.BorderAlpha
	if s.hovered {
		panel, border = p.PanelHoverAlpha, p.BorderHoverAlpha
	}
	c.FillRoundRect(r, p.CornerRadius, p.PanelColor.WithAlpha(panel*s.opacity))
	c.StrokeRoundRect(r, p.CornerRadius, 1, p.LineColor.WithAlpha(border*s.opacity))
	s.paintShine(c, r)

	if p.Animated {
		if a := s.lineAlpha(); a > 0 {
			s.paintLine(c, r, a*s.opacity)
		}
	}

	if s.content != nil {
		s.content.Paint(c, r.Inset(p.Padding), s.opacity)
	}
}

func (s *Shell) lineAlpha() float64 {
	p := s.params
	if s.Accelerated() {
		return p.ActiveLineAlpha
	}
	if p.HideIdleLine && !s.hovered {
		return 0
	}
	return p.IdleLineAlpha
}

// LineLength is the current length of the travelling line.
func (s *Shell) LineLength() float64 {
	if s.Accelerated() {
		return s.params.ActiveLineLength
	}
	return s.params.IdleLineLength
}

func (s *Shell) paintLine(c paint.Canvas, r paint.Rect, alpha float64) {
	x, y, e := s.Locate(r, s.pos)
	half := s.LineLength() / 2
	col := s.params.LineColor.WithAlpha(alpha)
	if e == Top || e == Bottom {
		c.FadedLine(x-half, y, x+half, y, s.params.LineWidth, col)
		return
	}
	c.FadedLine(x, y-half, x, y+half, s.params.LineWidth, col)
}

// paintShine lights the panel under the pointer. The point is scaled with
// the card so it stays under the cursor while pressed.
func (s *Shell) paintShine(c paint.Canvas, r paint.Rect) {
	if !s.hovered || s.params.ShineAlpha <= 0 {
		return
	}
	x, y := r.X+s.hoverX*s.scale, r.Y+s.hoverY*s.scale
	radius := math.Min(r.W, r.H) / 2
	c.Glow(x, y, radius, s.params.LineColor.WithAlpha(s.params.ShineAlpha*s.opacity))
}
