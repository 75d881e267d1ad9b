package renderer2d

import (
	_ "embed"
	"log/slog"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/text"
)

var (
	//go:embed shaders/quad.vert
	quadVert string
	//go:embed shaders/quad.frag
	quadFrag string
)

// Canvas draws in screen pixels, origin top-left, Y down.
type Canvas struct {
	batch  *Batch
	size   core.Vec2
	last   Statistics
	warned map[string]bool
}

// NewCanvas builds the quad batch on r with the embedded shaders.
func NewCanvas(r core.Renderer) (*Canvas, error) {
	b, err := NewBatch(r, quadVert, quadFrag, 10000)
	if err != nil {
		return nil, err
	}
	return &Canvas{batch: b, warned: make(map[string]bool)}, nil
}

func (c *Canvas) Size() core.Vec2 { return c.size }

// Stats reports the counts of the last finished frame.
func (c *Canvas) Stats() Statistics { return c.last }

// Release frees the batch's device objects. Call it before the renderer shuts
// down.
func (c *Canvas) Release() { c.batch.Release() }

func (c *Canvas) BeginFrame(width, height int) {
	c.size = core.Vec2{X: float32(width), Y: float32(height)}
	c.batch.Begin(ScreenOrtho(float32(width), float32(height)))
}

func (c *Canvas) EndFrame() {
	c.batch.End()
	c.last = c.batch.Stats()
}

func (c *Canvas) FillRect(r core.Rect, col colors.Color) {
	s := r.Size()
	c.batch.Quad(r.Min.X, r.Min.Y, s.X, s.Y, col)
}

// StrokeRect draws a border of the given width inside r.
func (c *Canvas) StrokeRect(r core.Rect, col colors.Color, width float32) {
	s := r.Size()
	w := min(width, s.X/2, s.Y/2)
	if w <= 0 {
		return
	}
	c.batch.Quad(r.Min.X, r.Min.Y, s.X, w, col)
	c.batch.Quad(r.Min.X, r.Max.Y-w, s.X, w, col)
	c.batch.Quad(r.Min.X, r.Min.Y+w, w, s.Y-2*w, col)
	c.batch.Quad(r.Max.X-w, r.Min.Y+w, w, s.Y-2*w, col)
}

func (c *Canvas) DrawImage(img core.Image, at core.Vec2) {
	tex := c.texture(img)
	if tex == nil {
		return
	}
	s := img.Size()
	c.batch.TexturedQuad(at.X, at.Y, s.X, s.Y, tex, colors.White)
}

// DrawImageRotated draws img centered on center, turned clockwise by rad.
func (c *Canvas) DrawImageRotated(img core.Image, center core.Vec2, rad float32) {
	tex := c.texture(img)
	if tex == nil {
		return
	}
	s := img.Size()
	c.batch.DrawTexturedQuadUV(center.X, center.Y, s.X, s.Y, tex, colors.White, rad, 0, 0, 1, 1)
}

func (c *Canvas) texture(img core.Image) core.Texture {
	dt, ok := img.(interface{ DeviceTexture() core.Texture })
	if !ok {
		c.warnOnce("image", "image is not a device texture")
		return nil
	}
	return dt.DeviceTexture()
}

func (c *Canvas) DrawText(f core.Font, at core.Vec2, s string, col colors.Color) {
	tf, ok := f.(*text.Font)
	if !ok {
		c.warnOnce("font", "font has no glyph atlas")
		return
	}
	tf.Draw(c.batch, at.X, at.Y, s, col)
}

func (c *Canvas) warnOnce(key, msg string) {
	if c.warned[key] {
		return
	}
	c.warned[key] = true
	slog.Warn(msg, "canvas", "renderer2d")
}

// ScreenOrtho maps pixels (0,0)-(w,h), Y down, to clip space. Column-major.
func ScreenOrtho(w, h float32) [16]float32 {
	return ortho(0, w, h, 0, -1, 1)
}

func ortho(l, r, b, t, n, f float32) [16]float32 {
	return [16]float32{
		2 / (r - l), 0, 0, 0,
		0, 2 / (t - b), 0, 0,
		0, 0, -2 / (f - n), 0,
		-(r + l) / (r - l), -(t + b) / (t - b), -(f + n) / (f - n), 1,
	}
}
