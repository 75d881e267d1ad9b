package text

import (
	"fmt"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
)

// Font is an Atlas uploaded to the GPU. It satisfies core.Font.
type Font struct {
	*Atlas
	Texture core.Texture
	r       core.Renderer
}

// LoadTTF rasterizes ttf at sizePx and uploads the sheet through r.
func LoadTTF(r core.Renderer, ttf []byte, sizePx float32) (*Font, error) {
	a, err := BuildAtlas(ttf, sizePx)
	if err != nil {
		return nil, err
	}
	b := a.Pixels.Bounds()
	tex, err := r.CreateTexture(core.TextureDesc{
		Width:     b.Dx(),
		Height:    b.Dy(),
		Format:    core.TextureRGBA8,
		Pixels:    a.Pixels.Pix,
		MinFilter: "nearest",
		MagFilter: "nearest",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("upload font atlas: %w", err)
	}
	return &Font{Atlas: a, Texture: tex, r: r}, nil
}

// Close drops the face and the device texture.
func (f *Font) Close() error {
	if f.Texture != nil {
		f.r.DeleteTexture(f.Texture)
		f.Texture = nil
	}
	return f.Atlas.Close()
}

// QuadSink receives one textured quad per glyph, centered on (x,y).
type QuadSink interface {
	DrawTexturedQuadUV(x, y, w, h float32, tex core.Texture, tint colors.Color, rotationRad float32, u0, v0, u1, v1 float32)
}

// Draw lays s out with its top-left corner at (x,y). Positive Y goes down.
func (f *Font) Draw(dst QuadSink, x, y float32, s string, tint colors.Color) {
	penX := x
	baseY := y + f.Ascent
	prev := rune(-1)

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += f.LineHeight()
			prev = -1
			continue
		}

		g, ok := f.Glyphs[r]
		if !ok {
			penX += f.advance(r)
			prev = r
			continue
		}
		penX += f.kern(prev, r)

		if g.W > 0 && g.H > 0 {
			left := penX + g.BearingX
			top := baseY - g.BearingY
			dst.DrawTexturedQuadUV(
				left+float32(g.W)*0.5, top+float32(g.H)*0.5,
				float32(g.W), float32(g.H),
				f.Texture, tint, 0,
				g.U0, g.V0, g.U1, g.V1,
			)
		}
		penX += g.Advance
		prev = r
	}
}
