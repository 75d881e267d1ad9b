package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
)

// monoFont is 8px per rune and 16px tall.
type monoFont struct{}

func (monoFont) MeasureText(s string) core.Vec2 {
	return core.Vec2{X: float32(8 * len([]rune(s))), Y: 16}
}
func (monoFont) LineHeight() float32 { return 16 }

type fakeImage struct{ w, h float32 }

func (i fakeImage) Size() core.Vec2 { return core.Vec2{X: i.w, Y: i.h} }

type fakeResources struct {
	images map[string]core.Image
	fonts  map[string]core.Font
}

var errMissing = errors.New("missing")

func (r *fakeResources) Image(path string) (core.Image, error) {
	if img, ok := r.images[path]; ok {
		return img, nil
	}
	return nil, fmt.Errorf("image %q: %w", path, errMissing)
}

func (r *fakeResources) Font(path string, size int) (core.Font, error) {
	if f, ok := r.fonts[fmt.Sprintf("%s@%d", path, size)]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("font %q: %w", path, errMissing)
}

// drawOp is one recorded canvas call.
type drawOp struct {
	kind  string
	rect  core.Rect
	at    core.Vec2
	text  string
	color colors.Color
}

type recordCanvas struct {
	ops []drawOp
}

func (c *recordCanvas) Size() core.Vec2 { return core.Vec2{X: 640, Y: 480} }

func (c *recordCanvas) FillRect(r core.Rect, col colors.Color) {
	c.ops = append(c.ops, drawOp{kind: "fill", rect: r, color: col})
}

func (c *recordCanvas) StrokeRect(r core.Rect, col colors.Color, width float32) {
	c.ops = append(c.ops, drawOp{kind: "stroke", rect: r, color: col})
}

func (c *recordCanvas) DrawImage(img core.Image, at core.Vec2) {
	c.ops = append(c.ops, drawOp{kind: "image", at: at})
}

func (c *recordCanvas) DrawImageRotated(img core.Image, center core.Vec2, rad float32) {
	c.ops = append(c.ops, drawOp{kind: "rotated", at: center})
}

func (c *recordCanvas) DrawText(f core.Font, at core.Vec2, s string, col colors.Color) {
	c.ops = append(c.ops, drawOp{kind: "text", at: at, text: s, color: col})
}

func newTestGUI(t *testing.T) (*GUI, *core.Input) {
	t.Helper()
	in := core.NewInput()
	g, err := New(nil, in, WithFont(monoFont{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g, in
}

// click moves the cursor to p and presses then releases the primary button,
// delivering the click between the two like the dispatch path does.
func click(in *core.Input, root Widget, p core.Vec2) {
	in.Handle(core.EventCursor{X: p.X, Y: p.Y})
	in.Handle(core.EventButton{Button: core.ButtonPrimary, Down: true})
	root.OnClick(core.ButtonPrimary)
	in.Latch()
	in.Handle(core.EventButton{Button: core.ButtonPrimary, Down: false})
	in.Latch()
}

func wantVec(t *testing.T, what string, got, want core.Vec2) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %+v, want %+v", what, got, want)
	}
}

func wantRect(t *testing.T, what string, got, want core.Rect) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %+v, want %+v", what, got, want)
	}
}
