// Package assets holds the lazily filled resource caches. Caches form a
// chain: short-lived scopes hang below long-lived ones and are released on
// their own.
package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"

	"github.com/hubastard/sprig/engine/core"
)

// Loader reads assets from storage. Paths arrive with the scope prefix
// already applied.
type Loader interface {
	LoadImage(path string) (core.Image, error)
	LoadFont(path string, size int) (core.Font, error)
}

// Unloader is implemented by loaders whose handles need explicit disposal.
type Unloader interface {
	Unload(handle any)
}

type fontKey struct {
	path string
	size int
}

// Resources is one scope of the cache chain. A lookup checks this scope,
// then the parents, and only then loads through this scope's loader with
// this scope's prefix. Parents never load or cache on behalf of a child.
type Resources struct {
	parent *Resources
	prefix string
	loader Loader
	log    *slog.Logger

	images map[string]core.Image
	fonts  map[fontKey]core.Font
}

type Option func(*Resources)

func WithLogger(l *slog.Logger) Option {
	return func(r *Resources) { r.log = l }
}

// WithPrefix sets the directory prepended to every path this scope loads.
func WithPrefix(prefix string) Option {
	return func(r *Resources) { r.prefix = prefix }
}

func WithParent(parent *Resources) Option {
	return func(r *Resources) { r.parent = parent }
}

func New(loader Loader, opts ...Option) *Resources {
	r := &Resources{
		loader: loader,
		log:    slog.Default(),
		images: make(map[string]core.Image),
		fonts:  make(map[fontKey]core.Font),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Child creates a scope below r sharing its loader and logger.
func (r *Resources) Child(prefix string) *Resources {
	return New(r.loader, WithParent(r), WithPrefix(prefix), WithLogger(r.log))
}

func (r *Resources) Parent() *Resources { return r.parent }
func (r *Resources) Prefix() string     { return r.prefix }

// Image returns the bitmap at p, loading it into this scope on first use.
func (r *Resources) Image(p string) (core.Image, error) {
	if img, ok := r.images[p]; ok {
		r.log.Debug("image found in this instance", "path", p)
		return img, nil
	}
	for up := r.parent; up != nil; up = up.parent {
		if img, ok := up.images[p]; ok {
			r.log.Debug("image found in parent", "path", p)
			return img, nil
		}
	}

	img, err := r.loader.LoadImage(r.resolve(p))
	if err != nil {
		return nil, r.fail("assets.Resources.Image", KindImage, p, err)
	}
	r.images[p] = img
	r.log.Debug("image loaded", "path", p, "prefix", r.prefix)
	return img, nil
}

// Font returns the font at p in the given pixel size.
func (r *Resources) Font(p string, size int) (core.Font, error) {
	key := fontKey{p, size}
	if f, ok := r.fonts[key]; ok {
		r.log.Debug("font found in this instance", "path", p, "size", size)
		return f, nil
	}
	for up := r.parent; up != nil; up = up.parent {
		if f, ok := up.fonts[key]; ok {
			r.log.Debug("font found in parent", "path", p, "size", size)
			return f, nil
		}
	}

	f, err := r.loader.LoadFont(r.resolve(p), size)
	if err != nil {
		return nil, r.fail("assets.Resources.Font", KindFont, p, err)
	}
	r.fonts[key] = f
	r.log.Debug("font loaded", "path", p, "size", size, "prefix", r.prefix)
	return f, nil
}

// Cached reports how many handles this scope owns.
func (r *Resources) Cached() int { return len(r.images) + len(r.fonts) }

// Release disposes every handle owned by this scope. Parents are untouched
// and children that borrowed from r must not outlive it.
func (r *Resources) Release() {
	un, _ := r.loader.(Unloader)
	for p, img := range r.images {
		r.dispose(un, img)
		delete(r.images, p)
	}
	for k, f := range r.fonts {
		r.dispose(un, f)
		delete(r.fonts, k)
	}
	r.log.Debug("resources released", "prefix", r.prefix)
}

func (r *Resources) dispose(un Unloader, h any) {
	if un != nil {
		un.Unload(h)
		return
	}
	if c, ok := h.(io.Closer); ok {
		if err := c.Close(); err != nil {
			r.log.Warn("closing asset", "err", err)
		}
	}
}

func (r *Resources) resolve(p string) string {
	if r.prefix == "" {
		return p
	}
	return path.Join(r.prefix, p)
}

func (r *Resources) fail(op string, kind Kind, p string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		err = fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	r.log.Warn("asset load failed", "kind", kind, "path", p, "err", err)
	return &LoadError{Op: op, Kind: kind, Path: p, Err: err}
}
