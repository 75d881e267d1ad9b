package ebitenhost

import (
	"bytes"
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hubastard/sprig/engine/assets"
	"github.com/hubastard/sprig/engine/core"
)

// Loader reads assets from FS into ebiten images and text/v2 faces. It
// satisfies assets.Loader and assets.Unloader.
type Loader struct {
	FS      fs.FS
	sources map[string]*text.GoTextFaceSource
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{FS: fsys, sources: make(map[string]*text.GoTextFaceSource)}
}

func (l *Loader) LoadImage(p string) (core.Image, error) {
	f, err := l.FS.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rgba, _, err := assets.DecodeRGBA(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return NewImage(ebiten.NewImageFromImage(rgba)), nil
}

// LoadFont parses each font file once and derives faces per size from it.
func (l *Loader) LoadFont(p string, size int) (core.Font, error) {
	src, ok := l.sources[p]
	if !ok {
		data, err := fs.ReadFile(l.FS, p)
		if err != nil {
			return nil, err
		}
		src, err = text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parse font: %w", err)
		}
		l.sources[p] = src
	}
	return &Font{face: &text.GoTextFace{Source: src, Size: float64(size)}}, nil
}

func (l *Loader) Unload(h any) {
	if img, ok := h.(*Image); ok {
		img.img.Deallocate()
	}
}
