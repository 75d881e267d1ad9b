package ui

import "github.com/hubastard/sprig/engine/core"

// Label is a line of text sized by its font metrics.
type Label struct {
	base
	text   string
	font   core.Font
	active bool
}

func (l *Label) Text() string          { return l.text }
func (l *Label) SetText(text string)   { l.text = text }
func (l *Label) Font() core.Font       { return l.font }
func (l *Label) Offset() core.Vec2     { return l.offset }
func (l *Label) SetOffset(p core.Vec2) { l.offset = p }

func (l *Label) Size() core.Vec2 {
	if l.font == nil || l.text == "" {
		return core.Vec2{}
	}
	return l.font.MeasureText(l.text).ClampZero()
}

func (l *Label) Rect() core.Rect            { return core.RectAt(l.offset, l.Size()) }
func (l *Label) PointIn(p core.Vec2) bool   { return l.Rect().Contains(p) }
func (l *Label) OnClick(button core.Button) {}

func (l *Label) Draw(c core.Canvas) {
	if l.font == nil || l.text == "" {
		return
	}
	col := l.colors.TextRegular
	if l.active {
		col = l.colors.TextActive
	}
	c.DrawText(l.font, l.offset, l.text, col)
}

// setActive lets an enclosing button switch the label to the active text color.
func (l *Label) setActive(active bool) { l.active = active }
