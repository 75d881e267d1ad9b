package ui

import (
	"iter"
	"slices"

	"github.com/hubastard/sprig/engine/core"
)

// base carries what every widget shares: its anchor, debug name and the
// scheme/input references handed out by the factory.
type base struct {
	name   string
	offset core.Vec2
	colors *ColorScheme
	layout *LayoutScheme
	input  *core.Input
}

func (b *base) Name() string        { return b.name }
func (b *base) SetName(name string) { b.name = name }

// hovered reports whether the recorded cursor lies within r.
func (b *base) hovered(r core.Rect) bool {
	return b.input != nil && r.Contains(b.input.Cursor())
}

// clicked is the leaf activation rule: primary button, fresh press, cursor
// inside r.
func (b *base) clicked(r core.Rect, button core.Button) bool {
	if button != core.ButtonPrimary || b.input == nil {
		return false
	}
	return b.input.ButtonPressed(button) && r.Contains(b.input.Cursor())
}

// group is the child list behind every container. Children are compared by
// identity.
type group struct {
	children []Widget
}

func (g *group) add(w Widget) { g.children = append(g.children, w) }

func (g *group) remove(w Widget) bool {
	i := slices.IndexFunc(g.children, func(c Widget) bool { return c == w })
	if i < 0 {
		return false
	}
	g.children = slices.Delete(g.children, i, i+1)
	return true
}

func (g *group) Contains(w Widget) bool {
	return slices.ContainsFunc(g.children, func(c Widget) bool { return c == w })
}

func (g *group) Len() int { return len(g.children) }

func (g *group) Children() iter.Seq[Widget] {
	return func(yield func(Widget) bool) {
		for _, c := range g.children {
			if !yield(c) {
				return
			}
		}
	}
}

func (g *group) translate(d core.Vec2) {
	if d == (core.Vec2{}) {
		return
	}
	for _, c := range g.children {
		c.SetOffset(c.Offset().Add(d))
	}
}

// bounds is the union of the children's rects; ok is false when empty.
func (g *group) bounds() (r core.Rect, ok bool) {
	for i, c := range g.children {
		if i == 0 {
			r = c.Rect()
			continue
		}
		r = r.Union(c.Rect())
	}
	return r, len(g.children) > 0
}

func (g *group) drawChildren(c core.Canvas) {
	for _, child := range g.children {
		child.Draw(c)
	}
}

// clickChildren forwards to a snapshot so callbacks may edit the tree.
func (g *group) clickChildren(button core.Button) {
	for _, child := range slices.Clone(g.children) {
		child.OnClick(button)
	}
}
