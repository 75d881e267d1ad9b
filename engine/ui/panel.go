package ui

import "github.com/hubastard/sprig/engine/core"

// Panel draws a bordered background around its children. Every insertion is
// aligned against the same anchor point.
type Panel struct {
	base
	group
}

// Anchor is the point new children are aligned to.
func (p *Panel) Anchor() core.Vec2 { return p.offset }

func (p *Panel) Insert(w Widget, a Alignment) {
	Place(w, p.offset, a)
	p.add(w)
}

func (p *Panel) Remove(w Widget) bool { return p.remove(w) }

// Rect is the children's bounding box grown by the widget padding on every
// side. An empty panel is just the padding around its anchor.
func (p *Panel) Rect() core.Rect {
	r, ok := p.bounds()
	if !ok {
		r = core.RectAt(p.offset, core.Vec2{})
	}
	return r.Expand(p.layout.WidgetPadding)
}

func (p *Panel) Size() core.Vec2   { return p.Rect().Size() }
func (p *Panel) Offset() core.Vec2 { return p.Rect().Min }

func (p *Panel) SetOffset(to core.Vec2) {
	d := to.Sub(p.Offset())
	p.offset = p.offset.Add(d)
	p.translate(d)
}

func (p *Panel) PointIn(pt core.Vec2) bool  { return p.Rect().Contains(pt) }
func (p *Panel) OnClick(button core.Button) { p.clickChildren(button) }

func (p *Panel) Draw(c core.Canvas) {
	r := p.Rect()
	c.FillRect(r, p.colors.BgPanel)
	c.StrokeRect(r, p.colors.BorderPanel, p.layout.BorderWidth)
	p.drawChildren(c)
}
