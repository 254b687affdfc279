// Package term previews the page in a terminal. Each character cell covers
// a CellW×CellH block of logical pixels.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/PiyushKingg/yushen/internal/paint"
)

const (
	CellW = 7
	CellH = 16
)

type cell struct {
	r      rune
	fg, bg paint.Color
}

// Canvas rasterises draw calls into a cell buffer. Flush copies the
// buffer to the screen.
type Canvas struct {
	screen     tcell.Screen
	cols, rows int
	cells      []cell

	Background paint.Color
}

var _ paint.TextCanvas = (*Canvas)(nil)

func NewCanvas(s tcell.Screen) *Canvas {
	c := &Canvas{screen: s, Background: paint.Black}
	cols, rows := s.Size()
	c.Resize(cols*CellW, rows*CellH, 1)
	return c
}

// Resize ignores dpr; a terminal has no sub-cell resolution.
func (c *Canvas) Resize(w, h int, _ float64) {
	cols, rows := max(w/CellW, 1), max(h/CellH, 1)
	if cols == c.cols && rows == c.rows {
		return
	}
	c.cols, c.rows = cols, rows
	c.cells = make([]cell, cols*rows)
	c.Clear()
}

func (c *Canvas) Size() (int, int) { return c.cols * CellW, c.rows * CellH }

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', fg: c.Background, bg: c.Background}
	}
}

func (c *Canvas) at(x, y float64) *cell {
	col, row := int(math.Floor(x/CellW)), int(math.Floor(y/CellH))
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

// plot puts a glyph whose colour is col composited over the cell
// background.
func (c *Canvas) plot(x, y float64, r rune, col paint.Color) {
	cl := c.at(x, y)
	if cl == nil || col.A <= 0 {
		return
	}
	cl.r = r
	cl.fg = paint.Blend(cl.bg, col.WithAlpha(1), col.A)
}

// shade tints the cell background.
func (c *Canvas) shade(x, y float64, col paint.Color) {
	cl := c.at(x, y)
	if cl == nil || col.A <= 0 {
		return
	}
	cl.bg = paint.Blend(cl.bg, col.WithAlpha(1), col.A)
	if cl.r == ' ' {
		cl.fg = cl.bg
	}
}

// eachCell calls fn with the centre of every cell overlapping r.
func (c *Canvas) eachCell(r paint.Rect, fn func(x, y float64)) {
	c0, r0 := max(int(math.Floor(r.X/CellW)), 0), max(int(math.Floor(r.Y/CellH)), 0)
	c1, r1 := min(int(math.Ceil((r.X+r.W)/CellW)), c.cols), min(int(math.Ceil((r.Y+r.H)/CellH)), c.rows)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			fn((float64(col)+0.5)*CellW, (float64(row)+0.5)*CellH)
		}
	}
}

func (c *Canvas) FillCircle(x, y, r float64, col paint.Color) {
	if r >= CellW {
		c.eachCell(paint.Rect{X: x - r, Y: y - r, W: 2 * r, H: 2 * r}, func(cx, cy float64) {
			if math.Hypot(cx-x, cy-y) <= r {
				c.shade(cx, cy, col)
			}
		})
		return
	}
	glyph := '·'
	if r >= 2 {
		glyph = '•'
	}
	c.plot(x, y, glyph, col)
}

func (c *Canvas) StrokeCircle(x, y, r, _ float64, col paint.Color) {
	n := max(12, int(2*math.Pi*r/CellW))
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		c.plot(x+r*math.Cos(a), y+r*math.Sin(a), '∘', col)
	}
}

func lineGlyph(dx, dy float64, heavy bool) rune {
	// compare in cell units so that the aspect ratio is honoured
	ax, ay := math.Abs(dx)/CellW, math.Abs(dy)/CellH
	switch {
	case ax > 2*ay:
		if heavy {
			return '━'
		}
		return '─'
	case ay > 2*ax:
		if heavy {
			return '┃'
		}
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// walk samples the segment about once per cell.
func walk(x1, y1, x2, y2 float64, fn func(t, x, y float64)) {
	dx, dy := x2-x1, y2-y1
	n := int(math.Max(math.Abs(dx)/CellW, math.Abs(dy)/CellH)) + 1
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		fn(t, x1+dx*t, y1+dy*t)
	}
}

func (c *Canvas) Line(x1, y1, x2, y2, _ float64, col paint.Color) {
	g := lineGlyph(x2-x1, y2-y1, false)
	walk(x1, y1, x2, y2, func(_, x, y float64) { c.plot(x, y, g, col) })
}

func (c *Canvas) FadedLine(x1, y1, x2, y2, _ float64, col paint.Color) {
	g := lineGlyph(x2-x1, y2-y1, true)
	walk(x1, y1, x2, y2, func(t, x, y float64) {
		c.plot(x, y, g, col.WithAlpha(col.A*paint.FadeAlpha(t)))
	})
}

func (c *Canvas) Glow(x, y, r float64, col paint.Color) {
	c.eachCell(paint.Rect{X: x - r, Y: y - r, W: 2 * r, H: 2 * r}, func(cx, cy float64) {
		if d := math.Hypot(cx-x, cy-y); d < r {
			c.shade(cx, cy, col.WithAlpha(col.A*(1-d/r)))
		}
	})
}

func (c *Canvas) FillRoundRect(r paint.Rect, _ float64, col paint.Color) {
	c.eachCell(r, func(x, y float64) {
		if r.Contains(x, y) {
			c.shade(x, y, col)
		}
	})
}

func (c *Canvas) StrokeRoundRect(r paint.Rect, _, _ float64, col paint.Color) {
	if r.Empty() {
		return
	}
	x0, y0 := r.X+CellW/2, r.Y+CellH/2
	x1, y1 := r.X+r.W-CellW/2, r.Y+r.H-CellH/2
	for x := x0 + CellW; x < x1; x += CellW {
		c.plot(x, y0, '─', col)
		c.plot(x, y1, '─', col)
	}
	for y := y0 + CellH; y < y1; y += CellH {
		c.plot(x0, y, '│', col)
		c.plot(x1, y, '│', col)
	}
	c.plot(x0, y0, '╭', col)
	c.plot(x1, y0, '╮', col)
	c.plot(x0, y1, '╰', col)
	c.plot(x1, y1, '╯', col)
}

// Text writes one rune per cell starting at the cell containing (x, y),
// which is the top-left of the text box.
func (c *Canvas) Text(s string, x, y float64, col paint.Color) {
	i := 0
	for _, r := range s {
		c.plot(x+float64(i)*CellW+CellW/2, y+CellH/2, r, col)
		i++
	}
}

func rgb(c paint.Color) tcell.Color {
	n := c.NRGBA()
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

// Flush copies the buffer to the screen and shows it.
func (c *Canvas) Flush() {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cl := c.cells[row*c.cols+col]
			style := tcell.StyleDefault.Foreground(rgb(cl.fg)).Background(rgb(cl.bg))
			c.screen.SetContent(col, row, cl.r, nil, style)
		}
	}
	c.screen.Show()
}
