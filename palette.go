package blockmtl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColorTable maps a material id to its color.
// Implementations must be deterministic and free of side effects while a Library encodes.
type ColorTable interface {
	// Color returns the color for id, ok is false when no material is defined.
	Color(id int) (c Color, ok bool)
}

// Palette is a fixed-size ColorTable. It is safe for concurrent reads once populated.
type Palette struct {
	colors  [PaletteSize]Color  // Colors indexed by id
	defined [PaletteSize]bool   // Presence mask
	names   [PaletteSize]string // Informational block names
	n       int                 // Number of defined ids
}

// NewPalette creates an empty palette.
func NewPalette() *Palette {
	return &Palette{}
}

// Set defines the color for id.
func (p *Palette) Set(id int, c Color) error {
	if id < 0 || id >= PaletteSize {
		return fmt.Errorf("%w: id %d out of range [0,%d)", ErrPalette, id, PaletteSize)
	}
	if !p.defined[id] {
		p.n++
	}
	p.colors[id] = c
	p.defined[id] = true

	return nil
}

// Color implements ColorTable.
func (p *Palette) Color(id int) (Color, bool) {
	if p == nil || id < 0 || id >= PaletteSize || !p.defined[id] {
		return Color{}, false
	}

	return p.colors[id], true
}

// Name returns the informational block name recorded for id, if any.
func (p *Palette) Name(id int) string {
	if p == nil || id < 0 || id >= PaletteSize {
		return ""
	}

	return p.names[id]
}

// Len returns the number of defined ids.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}

	return p.n
}

// paletteFile is the YAML palette document.
type paletteFile struct {
	Materials []paletteEntry `yaml:"materials"`
}

// paletteEntry is one palette definition, color is either hex or rgb.
type paletteEntry struct {
	ID    *int   `yaml:"id"`
	Name  string `yaml:"name,omitempty"`
	Color string `yaml:"color,omitempty"`
	RGB   []int  `yaml:"rgb,omitempty"`
}

// ParsePalette parses a YAML palette from bytes.
func ParsePalette(data []byte) (*Palette, error) {
	return DecodePalette(bytes.NewReader(data))
}

// DecodePalette parses a YAML palette from reader.
func DecodePalette(r io.Reader) (*Palette, error) {
	var doc paletteFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrPalette, err)
	}

	p := NewPalette()
	for i, e := range doc.Materials {
		if e.ID == nil {
			return nil, fmt.Errorf("%w: entry %d: missing id", ErrPalette, i)
		}
		id := *e.ID
		if _, ok := p.Color(id); ok {
			return nil, fmt.Errorf("%w: entry %d: duplicate id %d", ErrPalette, i, id)
		}
		c, err := e.color()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d (id %d): %v", ErrPalette, i, id, err)
		}
		if err := p.Set(id, c); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		p.names[id] = strings.TrimSpace(e.Name)
	}

	return p, nil
}

// LoadPalette parses a YAML palette from a file.
func LoadPalette(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return DecodePalette(f)
}

// color resolves the entry color from hex or rgb.
func (e paletteEntry) color() (Color, error) {
	hasHex := strings.TrimSpace(e.Color) != ""
	hasRGB := len(e.RGB) != 0
	switch {
	case hasHex && hasRGB:
		return Color{}, errors.New("both color and rgb set")
	case hasHex:
		return ParseHexColor(strings.TrimSpace(e.Color))
	case hasRGB:
		if len(e.RGB) != 3 {
			return Color{}, fmt.Errorf("rgb must have 3 components, got %d", len(e.RGB))
		}
		for _, v := range e.RGB {
			if v < 0 || v > 255 {
				return Color{}, fmt.Errorf("rgb component %d out of range [0,255]", v)
			}
		}
		return SetColorRGB(uint8(e.RGB[0]), uint8(e.RGB[1]), uint8(e.RGB[2])), nil
	default:
		return Color{}, errors.New("color or rgb required")
	}
}
