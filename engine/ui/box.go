package ui

import "github.com/hubastard/sprig/engine/core"

// Axis is the layout axis of a Box.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Box packs children back to back. Each insertion advances the cursor by the
// child's extent on the axis plus the container spacing. Removal never
// reflows the remaining children.
type Box struct {
	base
	group
	axis   Axis
	cursor core.Vec2
}

func (b *Box) Axis() Axis { return b.axis }

// Cursor is the top-left corner of the next child.
func (b *Box) Cursor() core.Vec2 { return b.cursor }

// Insert places w at the cursor, top-left anchored. The alignment is ignored.
func (b *Box) Insert(w Widget, a Alignment) {
	w.SetOffset(b.cursor)
	b.add(w)

	size, gap := w.Size(), b.layout.ContainerSpacing
	if b.axis == Vertical {
		b.cursor.Y += size.Y + gap.Y
	} else {
		b.cursor.X += size.X + gap.X
	}
}

func (b *Box) Remove(w Widget) bool { return b.remove(w) }

func (b *Box) Rect() core.Rect {
	if r, ok := b.bounds(); ok {
		return r
	}
	return core.RectAt(b.offset, core.Vec2{})
}

func (b *Box) Size() core.Vec2   { return b.Rect().Size() }
func (b *Box) Offset() core.Vec2 { return b.Rect().Min }

func (b *Box) SetOffset(p core.Vec2) {
	d := p.Sub(b.Offset())
	b.offset = b.offset.Add(d)
	b.cursor = b.cursor.Add(d)
	b.translate(d)
}

func (b *Box) PointIn(p core.Vec2) bool   { return true }
func (b *Box) OnClick(button core.Button) { b.clickChildren(button) }
func (b *Box) Draw(c core.Canvas)         { b.drawChildren(c) }
