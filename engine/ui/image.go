package ui

import "github.com/hubastard/sprig/engine/core"

// Image shows a bitmap at its natural size.
type Image struct {
	base
	img core.Image
}

func (i *Image) Bitmap() core.Image       { return i.img }
func (i *Image) Offset() core.Vec2        { return i.offset }
func (i *Image) SetOffset(p core.Vec2)    { i.offset = p }
func (i *Image) Rect() core.Rect          { return core.RectAt(i.offset, i.Size()) }
func (i *Image) PointIn(p core.Vec2) bool { return i.Rect().Contains(p) }

func (i *Image) Size() core.Vec2 {
	if i.img == nil {
		return core.Vec2{}
	}
	return i.img.Size().ClampZero()
}

func (i *Image) OnClick(button core.Button) {}

func (i *Image) Draw(c core.Canvas) {
	if i.img != nil {
		c.DrawImage(i.img, i.offset)
	}
}
