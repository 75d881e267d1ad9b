package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
	"golang.org/x/image/bmp"
	"golang.org/x/image/font/gofont/goregular"
)

type fakeTexture struct{ w, h int }

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }

// fakeRenderer records texture traffic; everything else is inert.
type fakeRenderer struct {
	created []core.TextureDesc
	deleted int
}

func (r *fakeRenderer) Resize(w, h int)      {}
func (r *fakeRenderer) Clear(c colors.Color) {}
func (r *fakeRenderer) CreateTexture(d core.TextureDesc) (core.Texture, error) {
	r.created = append(r.created, d)
	return &fakeTexture{d.Width, d.Height}, nil
}
func (r *fakeRenderer) DeleteTexture(t core.Texture) { r.deleted++ }
func (r *fakeRenderer) CreatePipeline(core.PipelineDesc) (core.Pipeline, error) {
	return nil, errors.New("unsupported")
}
func (r *fakeRenderer) DeletePipeline(core.Pipeline) {}
func (r *fakeRenderer) CreateMesh(core.MeshDesc) (core.Mesh, error) {
	return nil, errors.New("unsupported")
}
func (r *fakeRenderer) DeleteMesh(core.Mesh) {}
func (r *fakeRenderer) UpdateMesh(core.Mesh, []float32, []uint32) error { return nil }
func (r *fakeRenderer) Draw(core.DrawCmd)                               {}
func (r *fakeRenderer) GPUVersion() string                              { return "fake" }
func (r *fakeRenderer) Shutdown()                                       {}

func encoded(t *testing.T, enc func(*bytes.Buffer, image.Image) error, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := enc(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestDeviceLoaderImages(t *testing.T) {
	pngEnc := func(b *bytes.Buffer, m image.Image) error { return png.Encode(b, m) }
	bmpEnc := func(b *bytes.Buffer, m image.Image) error { return bmp.Encode(b, m) }
	fsys := fstest.MapFS{
		"img/a.png": {Data: encoded(t, pngEnc, 3, 2)},
		"img/b.bmp": {Data: encoded(t, bmpEnc, 5, 4)},
		"img/c.png": {Data: []byte("garbage")},
	}
	r := &fakeRenderer{}
	res := New(&DeviceLoader{R: r, FS: fsys}, WithPrefix("img"), WithLogger(discard()))

	a, err := res.Image("a.png")
	if err != nil {
		t.Fatalf("png: %v", err)
	}
	if a.Size() != core.V(3, 2) {
		t.Errorf("png size = %+v", a.Size())
	}
	if px := r.created[0].Pixels; len(px) != 3*2*4 || px[0] != 255 || px[3] != 255 {
		t.Errorf("png pixels = %v", px[:4])
	}

	b, err := res.Image("b.bmp")
	if err != nil {
		t.Fatalf("bmp: %v", err)
	}
	if b.Size() != core.V(5, 4) {
		t.Errorf("bmp size = %+v", b.Size())
	}

	if _, err := res.Image("c.png"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("garbage: err = %v, want a decode error", err)
	}
	if _, err := res.Image("d.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing: err = %v", err)
	}

	res.Release()
	if r.deleted != 2 {
		t.Errorf("deleted = %d, want 2", r.deleted)
	}
}

func TestDeviceLoaderFont(t *testing.T) {
	fsys := fstest.MapFS{"fonts/go.ttf": {Data: goregular.TTF}}
	r := &fakeRenderer{}
	res := New(&DeviceLoader{R: r, FS: fsys}, WithPrefix("fonts"), WithLogger(discard()))

	f, err := res.Font("go.ttf", 13)
	if err != nil {
		t.Fatalf("Font: %v", err)
	}
	if f.MeasureText("hello").X <= 0 {
		t.Error("font measures nothing")
	}
	if len(r.created) != 1 {
		t.Errorf("textures created = %d", len(r.created))
	}

	res.Release()
	if r.deleted != 1 {
		t.Errorf("deleted = %d, want 1", r.deleted)
	}
}

func TestDecodeRGBAUnknownFormat(t *testing.T) {
	if _, _, err := DecodeRGBA(bytes.NewReader([]byte{1, 2, 3})); !errors.Is(err, image.ErrFormat) {
		t.Errorf("err = %v", err)
	}
}
