package ui

import (
	"fmt"

	"github.com/hubastard/sprig/engine/core"
)

// Direction is the way a Rail cursor advances.
type Direction uint8

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

func (d Direction) unit() core.Vec2 {
	switch d {
	case DirDown:
		return core.Vec2{Y: 1}
	case DirLeft:
		return core.Vec2{X: -1}
	case DirUp:
		return core.Vec2{Y: -1}
	default:
		return core.Vec2{X: 1}
	}
}

// Rail places each child at a cursor that advances by a constant stride,
// whatever the child's size.
type Rail struct {
	base
	group
	dir    Direction
	stride float32
	cursor core.Vec2
}

func (r *Rail) Direction() Direction { return r.dir }
func (r *Rail) Stride() float32      { return r.stride }

// Cursor is where the next child will be aligned.
func (r *Rail) Cursor() core.Vec2 { return r.cursor }

func (r *Rail) Insert(w Widget, a Alignment) {
	Place(w, r.cursor, a)
	r.add(w)
	r.cursor = r.cursor.Add(r.dir.unit().Scale(r.stride))
}

// Remove drops w. The cursor and the other children stay where they are.
func (r *Rail) Remove(w Widget) bool { return r.remove(w) }

func (r *Rail) Rect() core.Rect {
	if b, ok := r.bounds(); ok {
		return b
	}
	return core.RectAt(r.offset, core.Vec2{})
}

func (r *Rail) Size() core.Vec2   { return r.Rect().Size() }
func (r *Rail) Offset() core.Vec2 { return r.Rect().Min }

func (r *Rail) SetOffset(p core.Vec2) {
	d := p.Sub(r.Offset())
	r.offset = r.offset.Add(d)
	r.cursor = r.cursor.Add(d)
	r.translate(d)
}

func (r *Rail) PointIn(p core.Vec2) bool   { return true }
func (r *Rail) OnClick(button core.Button) { r.clickChildren(button) }
func (r *Rail) Draw(c core.Canvas)         { r.drawChildren(c) }
