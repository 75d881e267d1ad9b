package ui

import "github.com/hubastard/sprig/engine/core"

// Button frames a single sub widget and fires a callback on a primary click
// inside its rect. A zero requested size means "fit the sub widget plus
// padding"; any other size is used as given, even if it clips the content.
type Button struct {
	base
	sub       Widget
	requested core.Vec2
	onClick   func()
}

func (b *Button) Sub() Widget { return b.sub }

func (b *Button) Size() core.Vec2 {
	if b.requested != (core.Vec2{}) {
		return b.requested.ClampZero()
	}
	return b.sub.Size().Add(b.layout.WidgetPadding.Scale(2))
}

func (b *Button) Offset() core.Vec2 { return b.offset }

// SetOffset moves the frame and re-centers the sub widget inside it.
func (b *Button) SetOffset(p core.Vec2) {
	b.offset = p
	Place(b.sub, p.Add(b.Size().Scale(0.5)), AlignCenter|AlignMiddle)
}

func (b *Button) Rect() core.Rect          { return core.RectAt(b.offset, b.Size()) }
func (b *Button) PointIn(p core.Vec2) bool { return b.Rect().Contains(p) }

// SetCallback replaces the click callback; nil disables the button.
func (b *Button) SetCallback(fn func()) { b.onClick = fn }

func (b *Button) OnClick(button core.Button) {
	if b.onClick != nil && b.clicked(b.Rect(), button) {
		b.onClick()
	}
}

func (b *Button) Draw(c core.Canvas) {
	r := b.Rect()
	hover := b.hovered(r)

	bg, border := b.colors.BgRegular, b.colors.BorderRegular
	if hover {
		bg, border = b.colors.BgActive, b.colors.BorderActive
	}
	c.FillRect(r, bg)
	c.StrokeRect(r, border, b.layout.BorderWidth)

	if l, ok := b.sub.(interface{ setActive(bool) }); ok {
		l.setActive(hover)
	}
	b.sub.Draw(c)
}

// ButtonImage uses a bitmap directly as the clickable surface.
type ButtonImage struct {
	base
	img     core.Image
	onClick func()
}

func (b *ButtonImage) Bitmap() core.Image       { return b.img }
func (b *ButtonImage) Offset() core.Vec2        { return b.offset }
func (b *ButtonImage) SetOffset(p core.Vec2)    { b.offset = p }
func (b *ButtonImage) Rect() core.Rect          { return core.RectAt(b.offset, b.Size()) }
func (b *ButtonImage) PointIn(p core.Vec2) bool { return b.Rect().Contains(p) }
func (b *ButtonImage) SetCallback(fn func())    { b.onClick = fn }

func (b *ButtonImage) Size() core.Vec2 {
	if b.img == nil {
		return core.Vec2{}
	}
	return b.img.Size().ClampZero()
}

func (b *ButtonImage) OnClick(button core.Button) {
	if b.onClick != nil && b.clicked(b.Rect(), button) {
		b.onClick()
	}
}

func (b *ButtonImage) Draw(c core.Canvas) {
	if b.img == nil {
		return
	}
	c.DrawImage(b.img, b.offset)
	if r := b.Rect(); b.hovered(r) {
		c.StrokeRect(r, b.colors.BorderActive, b.layout.BorderWidth)
	}
}
