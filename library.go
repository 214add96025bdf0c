package blockmtl

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
)

// NoMaterial is returned by ResolveFaceMaterial when no material applies.
const NoMaterial = -1

// Library resolves block faces to materials and serializes the material library.
// It holds no state besides its ColorTable, so one Library may be shared across goroutines
// when the table allows concurrent reads.
type Library struct {
	colors ColorTable
	opt    Options
}

// New creates a Library bound to colors.
func New(colors ColorTable, opt *Options) *Library {
	return &Library{colors: colors, opt: opt.normalize()}
}

// lookup queries the table, ids outside the palette are misses.
func (l *Library) lookup(id int) (Color, bool) {
	if id < 0 || id >= l.opt.PaletteSize || l.colors == nil {
		return Color{}, false
	}

	return l.colors.Color(id)
}

// ResolveFaceMaterial returns the material id for a face of block id, or NoMaterial.
// All faces of a block currently resolve to the same material.
func (l *Library) ResolveFaceMaterial(id int, face Face) int {
	if _, ok := l.lookup(id); ok {
		return id
	}

	return NoMaterial
}

// MaterialName returns the material name for id, or the fallback name.
func (l *Library) MaterialName(id int) string {
	if _, ok := l.lookup(id); ok {
		return l.opt.MaterialPrefix + strconv.Itoa(id)
	}

	return l.opt.UnknownName
}

// WriteHeader writes the mtllib reference line and a blank line for the geometry file.
func (l *Library) WriteHeader(w io.Writer) error {
	if _, err := io.WriteString(w, "mtllib "+l.opt.LibraryName+"\n\n"); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}

// LibraryName returns the material library file name referenced by the header.
func (l *Library) LibraryName() string {
	return l.opt.LibraryName
}

// Encode writes the material library to writer.
func (l *Library) Encode(w io.Writer) error {
	if err := encode(w, l); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}

// Format renders the material library to bytes.
func (l *Library) Format() ([]byte, error) {
	var buf bytes.Buffer
	if err := l.Encode(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// EncodeFile writes the material library to path, truncating existing content.
// A partially written file is left in place on failure.
func (l *Library) EncodeFile(path string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWrite, cerr)
		}
	}()

	return l.Encode(f)
}
