package assets

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	"github.com/hubastard/sprig/engine/core"
)

type stubImage struct{ path string }

func (stubImage) Size() core.Vec2 { return core.V(1, 1) }

type stubFont struct {
	path   string
	size   int
	closed *int
}

func (stubFont) MeasureText(s string) core.Vec2 { return core.Vec2{} }
func (stubFont) LineHeight() float32            { return 1 }
func (f stubFont) Close() error {
	*f.closed++
	return nil
}

// stubLoader serves every path listed in files and records what it loaded.
type stubLoader struct {
	files  map[string]bool
	loads  []string
	closed int
}

func (l *stubLoader) LoadImage(p string) (core.Image, error) {
	l.loads = append(l.loads, p)
	if !l.files[p] {
		return nil, fs.ErrNotExist
	}
	return stubImage{p}, nil
}

func (l *stubLoader) LoadFont(p string, size int) (core.Font, error) {
	l.loads = append(l.loads, p)
	if !l.files[p] {
		return nil, fs.ErrNotExist
	}
	return stubFont{path: p, size: size, closed: &l.closed}, nil
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)) }

func TestResourcesCaches(t *testing.T) {
	l := &stubLoader{files: map[string]bool{"db.png": true}}
	r := New(l, WithLogger(discard()))

	a, err := r.Image("db.png")
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	b, _ := r.Image("db.png")
	if a != b {
		t.Error("second lookup returned a different handle")
	}
	if len(l.loads) != 1 {
		t.Errorf("loads = %v, want one", l.loads)
	}
}

func TestResourcesParentChain(t *testing.T) {
	l := &stubLoader{files: map[string]bool{
		"global.png":        true,
		"level1/local.png":  true,
		"level1/global.png": true,
	}}
	root := New(l, WithLogger(discard()))
	if _, err := root.Image("global.png"); err != nil {
		t.Fatal(err)
	}

	child := root.Child("level1")
	img, err := child.Image("global.png")
	if err != nil {
		t.Fatal(err)
	}
	if img.(stubImage).path != "global.png" {
		t.Errorf("child loaded its own copy: %v", img)
	}
	if child.Cached() != 0 {
		t.Error("parent result was cached in the child")
	}

	if _, err := child.Image("local.png"); err != nil {
		t.Fatal(err)
	}
	if root.Cached() != 1 {
		t.Error("child load was cached in the parent")
	}

	want := []string{"global.png", "level1/local.png"}
	if strings.Join(l.loads, ",") != strings.Join(want, ",") {
		t.Errorf("loads = %v, want %v", l.loads, want)
	}
}

func TestResourcesNotFound(t *testing.T) {
	l := &stubLoader{}
	r := New(l, WithLogger(discard())).Child("x")

	_, err := r.Font("missing.ttf", 13)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ErrNotFound) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotFound wrapping fs.ErrNotExist", err)
	}
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("err is %T, want *LoadError", err)
	}
	if le.Kind != KindFont || le.Path != "missing.ttf" {
		t.Errorf("LoadError = %+v", le)
	}
	if !strings.Contains(err.Error(), `[font] "missing.ttf"`) {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestResourcesFontSizesAreDistinct(t *testing.T) {
	l := &stubLoader{files: map[string]bool{"f.ttf": true}}
	r := New(l, WithLogger(discard()))
	a, _ := r.Font("f.ttf", 13)
	b, _ := r.Font("f.ttf", 14)
	if a == b {
		t.Error("different sizes shared a handle")
	}
	if r.Cached() != 2 {
		t.Errorf("Cached = %d", r.Cached())
	}
}

func TestResourcesRelease(t *testing.T) {
	l := &stubLoader{files: map[string]bool{"f.ttf": true, "sub/f.ttf": true}}
	root := New(l, WithLogger(discard()))
	child := root.Child("sub")

	if _, err := root.Font("f.ttf", 10); err != nil {
		t.Fatal(err)
	}
	if _, err := child.Font("f.ttf", 12); err != nil {
		t.Fatal(err)
	}

	child.Release()
	if l.closed != 1 || child.Cached() != 0 || root.Cached() != 1 {
		t.Errorf("after child release: closed=%d child=%d root=%d", l.closed, child.Cached(), root.Cached())
	}

	// A released scope loads again on demand.
	if _, err := child.Font("f.ttf", 12); err != nil {
		t.Fatal(err)
	}
	if len(l.loads) != 3 {
		t.Errorf("loads = %v", l.loads)
	}
}
