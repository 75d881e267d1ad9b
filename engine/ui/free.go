package ui

import "github.com/hubastard/sprig/engine/core"

// Free is an unmanaged bucket: children keep whatever offset they were given.
// It is never a hit region of its own.
type Free struct {
	base
	group
}

// Insert takes ownership of w at its current offset. The alignment is ignored.
func (f *Free) Insert(w Widget, a Alignment) { f.add(w) }

func (f *Free) Remove(w Widget) bool { return f.remove(w) }

func (f *Free) Rect() core.Rect {
	if r, ok := f.bounds(); ok {
		return r
	}
	return core.RectAt(f.offset, core.Vec2{})
}

func (f *Free) Size() core.Vec2   { return f.Rect().Size() }
func (f *Free) Offset() core.Vec2 { return f.Rect().Min }

func (f *Free) SetOffset(p core.Vec2) {
	d := p.Sub(f.Offset())
	f.offset = f.offset.Add(d)
	f.translate(d)
}

func (f *Free) PointIn(p core.Vec2) bool   { return true }
func (f *Free) OnClick(button core.Button) { f.clickChildren(button) }
func (f *Free) Draw(c core.Canvas)         { f.drawChildren(c) }
