package assets

import (
	"bytes"
	"errors"
	"io/fs"
	"path"
	"time"
)

// WithFallback serves files from primary and, for names primary does not
// have, from the in-memory files. Sandboxes use it to ship a built-in font.
func WithFallback(primary fs.FS, files map[string][]byte) fs.FS {
	return fallbackFS{primary: primary, files: files}
}

type fallbackFS struct {
	primary fs.FS
	files   map[string][]byte
}

func (f fallbackFS) Open(name string) (fs.File, error) {
	file, err := f.primary.Open(name)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return file, err
	}
	data, ok := f.files[name]
	if !ok {
		return nil, err
	}
	return &memFile{Reader: bytes.NewReader(data), name: path.Base(name), size: int64(len(data))}, nil
}

type memFile struct {
	*bytes.Reader
	name string
	size int64
}

func (m *memFile) Stat() (fs.FileInfo, error) { return m, nil }
func (m *memFile) Close() error               { return nil }

func (m *memFile) Name() string       { return m.name }
func (m *memFile) Size() int64        { return m.size }
func (m *memFile) Mode() fs.FileMode  { return 0o444 }
func (m *memFile) ModTime() time.Time { return time.Time{} }
func (m *memFile) IsDir() bool        { return false }
func (m *memFile) Sys() any           { return nil }
