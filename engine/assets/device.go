package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"

	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/text"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DecodeRGBA decodes any registered format (png, jpeg, gif, bmp, webp) and
// returns tightly packed RGBA8 pixels, row-major from the top-left corner.
func DecodeRGBA(rd io.Reader) (*image.RGBA, string, error) {
	img, format, err := image.Decode(rd)
	if err != nil {
		return nil, "", err
	}
	return toRGBA(img), format, nil
}

func toRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Stride == m.Rect.Dx()*4 && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}

// DeviceLoader reads files from FS and turns them into GPU resources.
type DeviceLoader struct {
	R  core.Renderer
	FS fs.FS
}

func (d *DeviceLoader) LoadImage(p string) (core.Image, error) {
	f, err := d.FS.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rgba, format, err := DecodeRGBA(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	b := rgba.Bounds()
	tex, err := d.R.CreateTexture(core.TextureDesc{
		Width:     b.Dx(),
		Height:    b.Dy(),
		Format:    core.TextureRGBA8,
		Pixels:    rgba.Pix,
		MinFilter: "linear",
		MagFilter: "linear",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", format, err)
	}
	return core.TextureImage{Texture: tex}, nil
}

func (d *DeviceLoader) LoadFont(p string, size int) (core.Font, error) {
	data, err := fs.ReadFile(d.FS, p)
	if err != nil {
		return nil, err
	}
	return text.LoadTTF(d.R, data, float32(size))
}

func (d *DeviceLoader) Unload(h any) {
	switch v := h.(type) {
	case core.TextureImage:
		d.R.DeleteTexture(v.Texture)
	case io.Closer:
		_ = v.Close()
	}
}
