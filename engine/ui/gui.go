package ui

import (
	"fmt"

	"github.com/hubastard/sprig/engine/core"
)

// Resources is the part of the asset cache the factory needs.
type Resources interface {
	Image(path string) (core.Image, error)
	Font(path string, size int) (core.Font, error)
}

// GUI builds widgets that share one color scheme, one layout scheme and one
// input state. It keeps no widgets itself.
type GUI struct {
	colors *ColorScheme
	layout *LayoutScheme
	input  *core.Input
	res    Resources
	font   core.Font
}

type Option func(*GUI)

func WithColorScheme(cs *ColorScheme) Option {
	return func(g *GUI) { g.colors = cs }
}

func WithLayoutScheme(ls *LayoutScheme) Option {
	return func(g *GUI) { g.layout = ls }
}

// WithFont overrides the default font, skipping the lookup of
// LayoutScheme.FontPath.
func WithFont(f core.Font) Option {
	return func(g *GUI) { g.font = f }
}

// New creates a factory. Unless a font is given it loads the layout scheme's
// font through res and fails if that font cannot be resolved.
func New(res Resources, in *core.Input, opts ...Option) (*GUI, error) {
	g := &GUI{
		colors: DefaultColorScheme(),
		layout: DefaultLayoutScheme(),
		input:  in,
		res:    res,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.font == nil {
		if res == nil {
			return nil, fmt.Errorf("ui: no resources to load font %q", g.layout.FontPath)
		}
		f, err := res.Font(g.layout.FontPath, g.layout.FontSize)
		if err != nil {
			return nil, fmt.Errorf("ui: default font: %w", err)
		}
		g.font = f
	}
	return g, nil
}

func (g *GUI) ColorScheme() *ColorScheme   { return g.colors }
func (g *GUI) LayoutScheme() *LayoutScheme { return g.layout }
func (g *GUI) Input() *core.Input          { return g.input }
func (g *GUI) Font() core.Font             { return g.font }

func (g *GUI) base(at core.Vec2) base {
	return base{offset: at, colors: g.colors, layout: g.layout, input: g.input}
}

// Label creates a text label in the default font at the origin.
func (g *GUI) Label(text string) *Label {
	return &Label{base: g.base(core.Vec2{}), text: text, font: g.font}
}

// LabelFont creates a label with a specific font.
func (g *GUI) LabelFont(text string, f core.Font) *Label {
	return &Label{base: g.base(core.Vec2{}), text: text, font: f}
}

func (g *GUI) Image(img core.Image) *Image {
	return &Image{base: g.base(core.Vec2{}), img: img}
}

// ImageFile creates an image widget from a bitmap in the asset cache.
func (g *GUI) ImageFile(path string) (*Image, error) {
	img, err := g.loadImage(path)
	if err != nil {
		return nil, err
	}
	return g.Image(img), nil
}

// Button wraps sub. A zero size makes the button fit sub plus padding.
func (g *GUI) Button(sub Widget, size core.Vec2, onClick func()) *Button {
	b := &Button{base: g.base(core.Vec2{}), sub: sub, requested: size, onClick: onClick}
	b.SetOffset(core.Vec2{})
	return b
}

func (g *GUI) ButtonText(text string, onClick func()) *Button {
	return g.Button(g.Label(text), core.Vec2{}, onClick)
}

func (g *GUI) ButtonTextSized(text string, size core.Vec2, onClick func()) *Button {
	return g.Button(g.Label(text), size, onClick)
}

func (g *GUI) ButtonImage(img core.Image, onClick func()) *ButtonImage {
	return &ButtonImage{base: g.base(core.Vec2{}), img: img, onClick: onClick}
}

func (g *GUI) ButtonImageFile(path string, onClick func()) (*ButtonImage, error) {
	img, err := g.loadImage(path)
	if err != nil {
		return nil, err
	}
	return g.ButtonImage(img, onClick), nil
}

// Free creates an unmanaged container whose empty rect sits at at.
func (g *GUI) Free(at core.Vec2) *Free {
	return &Free{base: g.base(at)}
}

// Panel creates a bordered container aligning children against anchor.
func (g *GUI) Panel(anchor core.Vec2) *Panel {
	return &Panel{base: g.base(anchor)}
}

// Rail creates a fixed-stride container whose cursor starts at at.
func (g *GUI) Rail(at core.Vec2, dir Direction, stride float32) *Rail {
	return &Rail{base: g.base(at), dir: dir, stride: stride, cursor: at}
}

// Box creates a packing container whose cursor starts at at.
func (g *GUI) Box(at core.Vec2, axis Axis) *Box {
	return &Box{base: g.base(at), axis: axis, cursor: at}
}

func (g *GUI) loadImage(path string) (core.Image, error) {
	if g.res == nil {
		return nil, fmt.Errorf("ui: no resources to load image %q", path)
	}
	img, err := g.res.Image(path)
	if err != nil {
		return nil, fmt.Errorf("ui: image: %w", err)
	}
	return img, nil
}
