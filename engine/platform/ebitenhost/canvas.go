package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
)

// Image is a bitmap uploaded to ebiten.
type Image struct {
	img *ebiten.Image
}

func NewImage(img *ebiten.Image) *Image { return &Image{img: img} }

func (i *Image) Ebiten() *ebiten.Image { return i.img }

func (i *Image) Size() core.Vec2 {
	b := i.img.Bounds()
	return core.Vec2{X: float32(b.Dx()), Y: float32(b.Dy())}
}

// Font wraps a text/v2 face. It satisfies core.Font.
type Font struct {
	face *text.GoTextFace
}

func (f *Font) Face() text.Face { return f.face }

func (f *Font) LineHeight() float32 {
	m := f.face.Metrics()
	return float32(m.HAscent + m.HDescent + m.HLineGap)
}

func (f *Font) MeasureText(s string) core.Vec2 {
	w, h := text.Measure(s, f.face, float64(f.LineHeight()))
	return core.Vec2{X: float32(w), Y: float32(h)}
}

// canvas draws onto the ebiten screen image of the current frame.
type canvas struct {
	screen *ebiten.Image
}

func (c *canvas) Size() core.Vec2 {
	b := c.screen.Bounds()
	return core.Vec2{X: float32(b.Dx()), Y: float32(b.Dy())}
}

func (c *canvas) FillRect(r core.Rect, col colors.Color) {
	s := r.Size()
	vector.DrawFilledRect(c.screen, r.Min.X, r.Min.Y, s.X, s.Y, col.NRGBA(), true)
}

// StrokeRect keeps the stroke inside r, like the GL canvas.
func (c *canvas) StrokeRect(r core.Rect, col colors.Color, width float32) {
	s := r.Size()
	w := min(width, s.X/2, s.Y/2)
	if w <= 0 {
		return
	}
	vector.StrokeRect(c.screen, r.Min.X+w/2, r.Min.Y+w/2, s.X-w, s.Y-w, w, col.NRGBA(), true)
}

func (c *canvas) DrawImage(img core.Image, at core.Vec2) {
	ei, ok := img.(*Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	c.screen.DrawImage(ei.img, op)
}

func (c *canvas) DrawImageRotated(img core.Image, center core.Vec2, rad float32) {
	ei, ok := img.(*Image)
	if !ok {
		return
	}
	s := ei.Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(s.X)/2, -float64(s.Y)/2)
	op.GeoM.Rotate(float64(rad))
	op.GeoM.Translate(float64(center.X), float64(center.Y))
	op.Filter = ebiten.FilterLinear
	c.screen.DrawImage(ei.img, op)
}

func (c *canvas) DrawText(f core.Font, at core.Vec2, s string, col colors.Color) {
	ef, ok := f.(*Font)
	if !ok {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(col.NRGBA())
	op.LineSpacing = float64(ef.LineHeight())
	text.Draw(c.screen, s, ef.face, op)
}
