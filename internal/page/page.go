// Package page composes the about-me surface: one particle field behind a
// vertical stack of glass cards (hero, about).
package page

import (
	"log/slog"
	"math"

	"github.com/PiyushKingg/yushen/internal/card"
	"github.com/PiyushKingg/yushen/internal/field"
	"github.com/PiyushKingg/yushen/internal/loop"
	"github.com/PiyushKingg/yushen/internal/paint"
)

const (
	margin         = 24
	maxCardWidth   = 760
	heroHeight     = 240
	aboutHeight    = 340
	sectionGap     = 48
	entranceFrames = 36
	// visibleShare is how much of a section must be on screen before its
	// entrance starts.
	visibleShare = 0.15
)

// Section is one card in the vertical stack.
type Section struct {
	Name  string
	Shell *card.Shell

	doc  paint.Rect
	seen bool
	fade float64
}

// Seen reports whether the section's entrance has started.
func (s *Section) Seen() bool { return s.seen }

type Page struct {
	field    *field.Field
	sections []*Section

	w, h   float64
	scroll float64
	height float64
}

func New(fp field.Params, cp card.Params, theme Theme, seed int64) *Page {
	return &Page{
		field: field.New(fp, seed),
		sections: []*Section{
			{Name: "hero", Shell: card.New(cp, hero{theme: theme})},
			{Name: "about", Shell: card.New(cp, about{theme: theme})},
		},
	}
}

func (p *Page) Field() *field.Field { return p.field }

func (p *Page) Sections() []*Section { return p.sections }

func (p *Page) ScrollOffset() float64 { return p.scroll }

// Layout stacks the sections for a w×h viewport.
func (p *Page) Layout(w, h float64) {
	p.w, p.h = w, h
	cw := math.Min(w-2*margin, maxCardWidth)
	x := (w - cw) / 2
	y := math.Max(margin, h*0.15)
	for i, s := range p.sections {
		ch := float64(heroHeight)
		if i > 0 {
			ch = aboutHeight
		}
		s.doc = paint.Rect{X: x, Y: y, W: cw, H: ch}
		y += ch + sectionGap
	}
	p.height = y - sectionGap + margin
	p.Scroll(0)
}

// Scroll moves the stack by dy, clamped to the content height.
func (p *Page) Scroll(dy float64) {
	maxScroll := math.Max(0, p.height-p.h)
	p.scroll = math.Max(0, math.Min(maxScroll, p.scroll+dy))
	for _, s := range p.sections {
		r := s.doc
		r.Y -= p.scroll
		s.Shell.SetBounds(r)
	}
}

// Step runs the one-time entrance transitions of sections that have come
// into view.
func (p *Page) Step() {
	for _, s := range p.sections {
		if !s.seen && p.visible(s.Shell.Bounds()) {
			s.seen = true
			slog.Debug("page: section entered", "section", s.Name)
		}
		if s.seen && s.fade < 1 {
			s.fade = math.Min(1, s.fade+1.0/entranceFrames)
		}
		s.Shell.SetOpacity(easeOut(s.fade))
	}
}

func (p *Page) visible(r paint.Rect) bool {
	if r.Empty() || p.h <= 0 {
		return false
	}
	top := math.Max(0, r.Y)
	bottom := math.Min(p.h, r.Y+r.H)
	return bottom-top >= r.H*visibleShare
}

func easeOut(t float64) float64 { return 1 - math.Pow(1-t, 3) }

// paintCards steps and paints every card onto c without clearing it.
func (p *Page) paintCards(c paint.Canvas) {
	for _, s := range p.sections {
		s.Shell.Step()
		s.Shell.Paint(c)
	}
}

// Mount attaches the field to background and the cards to overlay. Either
// surface may be unavailable; the matching layer then stays inert.
func (p *Page) Mount(d loop.Driver, b *loop.Bus, background, overlay func() paint.Canvas) loop.Handles {
	hs := loop.Handles{p.field.Mount(d, b, background)}

	c := overlay()
	if c == nil {
		slog.Debug("page: no overlay surface, cards stay inert")
		return hs
	}
	if w, h := c.Size(); w > 0 && h > 0 {
		p.Layout(float64(w), float64(h))
	}
	oh := loop.Animate(d, func() {
		p.Step()
		c.Clear()
		p.paintCards(c)
	})
	oh.Listen(b, loop.Resize, func(ev loop.Event) {
		c.Resize(ev.W, ev.H, ev.DPR)
		p.Layout(float64(ev.W), float64(ev.H))
	})
	oh.Listen(b, loop.Wheel, func(ev loop.Event) { p.Scroll(ev.Y) })
	for _, s := range p.sections {
		s.Shell.Attach(oh, b)
	}
	return append(hs, oh)
}
