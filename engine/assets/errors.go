package assets

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched (errors.Is) by every LoadError whose file does not
// exist in the scope that tried to load it.
var ErrNotFound = errors.New("asset not found")

// Kind identifies the type of asset involved in a failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindImage
	KindFont
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindFont:
		return "font"
	default:
		return "unknown"
	}
}

// LoadError reports a resource that could not be resolved or loaded.
type LoadError struct {
	Op   string // e.g. "assets.Resources.Image"
	Kind Kind
	Path string // path as requested, before the scope prefix
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s [%s] %q: %v", e.Op, e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
