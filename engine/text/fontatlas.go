package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/hubastard/sprig/engine/core"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // distance from baseline to glyph top
	W, H     int     // glyph bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// Atlas is a rasterized glyph sheet: white glyphs with alpha coverage.
type Atlas struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Pixels                   *image.RGBA
	face                     font.Face
}

// BuildAtlas rasterizes the Latin-1 range of a TrueType/OpenType font.
func BuildAtlas(ttf []byte, sizePx float32) (*Atlas, error) {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent

	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	measure := make([]meas, 0, 224)
	for rr := rune(32); rr <= rune(255); rr++ {
		br, adv, ok := face.GlyphBounds(rr)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r:   rr,
			w:   (br.Max.X - br.Min.X).Round(),
			h:   (br.Max.Y - br.Min.Y).Round(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Round()),
			by:  float32(-br.Min.Y.Round()),
		})
	}

	// Shelf packer; the sheet doubles until everything fits.
	const padding = 2
	size := 128
	var pos map[rune]image.Point
	for {
		x, y, rowH := padding, padding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))

		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if g.w+padding*2 > size || g.h+padding*2 > size {
				fits = false
				break
			}
			if x+g.w+padding > size {
				x = padding
				y += rowH + padding
				rowH = 0
			}
			if y+g.h+padding > size {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + padding
			rowH = max(rowH, g.h)
		}

		if fits {
			break
		}
		size *= 2
		if size > 4096 {
			_ = face.Close()
			return nil, fmt.Errorf("font atlas too large (>%d)", 4096)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{color.RGBA{}}, image.Point{}, draw.Src)
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		gl := Glyph{Rune: g.r, Advance: g.adv, BearingX: g.bx, BearingY: g.by, W: g.w, H: g.h}
		if g.w == 0 || g.h == 0 {
			glyphs[g.r] = gl
			continue
		}
		p := pos[g.r]
		drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
		drawer.DrawString(string(g.r))

		gl.U0 = float32(p.X) / float32(size)
		gl.V0 = float32(p.Y) / float32(size)
		gl.U1 = float32(p.X+g.w) / float32(size)
		gl.V1 = float32(p.Y+g.h) / float32(size)
		glyphs[g.r] = gl
	}

	return &Atlas{
		SizePx:  sizePx,
		Ascent:  ascent,
		Descent: descent,
		LineGap: lineGap,
		Glyphs:  glyphs,
		Pixels:  dst,
		face:    face,
	}, nil
}

// LineHeight is the baseline-to-baseline distance.
func (a *Atlas) LineHeight() float32 { return a.Ascent - a.Descent + a.LineGap }

// MeasureText returns the extent of s; lines are split on '\n'.
func (a *Atlas) MeasureText(s string) core.Vec2 {
	var width, lineW float32
	prev := rune(-1)
	lineH := a.LineHeight()
	height := lineH

	for _, r := range s {
		if r == '\n' {
			width = max(width, lineW)
			lineW = 0
			height += lineH
			prev = -1
			continue
		}
		lineW += a.kern(prev, r) + a.advance(r)
		prev = r
	}
	return core.Vec2{X: max(width, lineW), Y: height}
}

func (a *Atlas) advance(r rune) float32 {
	if g, ok := a.Glyphs[r]; ok {
		return g.Advance
	}
	if sp, ok := a.Glyphs[' ']; ok {
		return sp.Advance
	}
	return 0
}

func (a *Atlas) kern(prev, r rune) float32 {
	if prev < 0 || a.face == nil {
		return 0
	}
	return float32(a.face.Kern(prev, r)) / 64
}

func (a *Atlas) Close() error {
	if a == nil || a.face == nil {
		return nil
	}
	err := a.face.Close()
	a.face = nil
	return err
}
