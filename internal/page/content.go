package page

import (
	"math"
	"strings"

	"github.com/PiyushKingg/yushen/internal/paint"
)

const (
	charWidth  = 7
	lineHeight = 16
)

// Theme colours the page copy.
type Theme struct {
	Text   paint.Color
	Muted  paint.Color
	Accent paint.Color
}

func DefaultTheme() Theme {
	return Theme{
		Text:   paint.Color{R: 0.96, G: 0.96, B: 0.97, A: 1},
		Muted:  paint.Color{R: 0.6, G: 0.62, B: 0.66, A: 1},
		Accent: paint.Color{R: 0.55, G: 0.7, B: 1, A: 1},
	}
}

// wrapText breaks s into lines of at most width pixels in the fixed-width
// debug font.
func wrapText(s string, width float64) []string {
	limit := int(width / charWidth)
	if limit < 1 {
		limit = 1
	}
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(s) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > limit {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// textBlock draws wrapped text from y and returns the y below it.
func textBlock(c paint.TextCanvas, s string, x, y, width float64, col paint.Color) float64 {
	for _, line := range wrapText(s, width) {
		c.Text(line, x, y, col)
		y += lineHeight
	}
	return y
}

type hero struct{ theme Theme }

func (h hero) Paint(c paint.Canvas, inner paint.Rect, alpha float64) {
	r := math.Min(inner.H/2, 70)
	ax, ay := inner.X+inner.W-r, inner.Y+inner.H/2
	c.Glow(ax, ay, r*1.3, h.theme.Accent.WithAlpha(0.2*alpha))
	c.FillCircle(ax, ay, r, h.theme.Accent.WithAlpha(0.15*alpha))
	c.StrokeCircle(ax, ay, r, 2, h.theme.Accent.WithAlpha(0.3*alpha))

	tc, ok := c.(paint.TextCanvas)
	if !ok {
		return
	}
	tc.Text(Initial, ax-charWidth/2, ay-lineHeight/2, h.theme.Accent.WithAlpha(0.6*alpha))

	width := inner.W - 2*r - 24
	y := inner.Y
	tc.Text(Greeting, inner.X, y, h.theme.Accent.WithAlpha(alpha))
	y += lineHeight * 2
	tc.Text(Name, inner.X, y, h.theme.Text.WithAlpha(alpha))
	y += lineHeight * 2
	textBlock(tc, Tagline, inner.X, y, width, h.theme.Muted.WithAlpha(alpha))
}

type about struct{ theme Theme }

func (a about) Paint(c paint.Canvas, inner paint.Rect, alpha float64) {
	tc, ok := c.(paint.TextCanvas)
	if !ok {
		return
	}
	y := inner.Y
	tc.Text(AboutKicker, inner.X, y, a.theme.Accent.WithAlpha(alpha))
	y += lineHeight * 2
	tc.Text(AboutHeading, inner.X, y, a.theme.Text.WithAlpha(alpha))
	y += lineHeight * 2
	for _, para := range AboutBio {
		y = textBlock(tc, para, inner.X, y, inner.W, a.theme.Muted.WithAlpha(alpha))
		y += lineHeight / 2
	}
	y = textBlock(tc, strings.Join(Skills, "  /  "), inner.X, y, inner.W, a.theme.Accent.WithAlpha(0.8*alpha))
	y += lineHeight / 2
	tc.Text(SocialText, inner.X, y, a.theme.Text.WithAlpha(alpha))
	underline := y + lineHeight - 2
	c.Line(inner.X, underline, inner.X+float64(len(SocialText)*charWidth), underline, 1, a.theme.Text.WithAlpha(0.4*alpha))
}
