package blockmtl

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestLoadPalette(t *testing.T) {
	pal, err := LoadPalette(filepath.Join("testdata", "palette.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if pal.Len() != 7 {
		t.Fatalf("expected 7 entries, got %d", pal.Len())
	}
	c, ok := pal.Color(2)
	if !ok || c != (Color{R: 0x5d, G: 0x8c, B: 0x36}) {
		t.Fatalf("unexpected grass color: %+v %v", c, ok)
	}
	c, ok = pal.Color(4)
	if !ok || c != (Color{R: 128, G: 128, B: 128}) {
		t.Fatalf("unexpected cobblestone color: %+v %v", c, ok)
	}
	if _, ok := pal.Color(5); ok {
		t.Fatalf("id 5 should be undefined")
	}
	if pal.Name(9) != "water" {
		t.Fatalf("unexpected name %q", pal.Name(9))
	}
}

func TestParsePaletteErrors(t *testing.T) {
	cases := map[string]string{
		"duplicate":  "materials:\n  - {id: 1, rgb: [1, 2, 3]}\n  - {id: 1, rgb: [1, 2, 3]}\n",
		"range":      "materials:\n  - {id: 256, rgb: [1, 2, 3]}\n",
		"negative":   "materials:\n  - {id: -1, rgb: [1, 2, 3]}\n",
		"missing id": "materials:\n  - {rgb: [1, 2, 3]}\n",
		"channel":    "materials:\n  - {id: 1, rgb: [1, 2, 300]}\n",
		"short rgb":  "materials:\n  - {id: 1, rgb: [1, 2]}\n",
		"both":       "materials:\n  - {id: 1, rgb: [1, 2, 3], color: \"#010203\"}\n",
		"neither":    "materials:\n  - {id: 1}\n",
		"bad hex":    "materials:\n  - {id: 1, color: \"#zzzzzz\"}\n",
		"unknown":    "materials:\n  - {id: 1, rgb: [1, 2, 3], alpha: 1}\n",
		"syntax":     "materials: [\n",
	}
	for name, doc := range cases {
		if _, err := ParsePalette([]byte(doc)); !errors.Is(err, ErrPalette) {
			t.Fatalf("%s: expected ErrPalette, got %v", name, err)
		}
	}
}

func TestParsePaletteEmpty(t *testing.T) {
	pal, err := ParsePalette(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if pal.Len() != 0 {
		t.Fatalf("expected empty palette")
	}
}

func TestPaletteSet(t *testing.T) {
	pal := NewPalette()
	if err := pal.Set(PaletteSize, Color{}); !errors.Is(err, ErrPalette) {
		t.Fatalf("expected ErrPalette, got %v", err)
	}
	if err := pal.Set(0, Color{R: 1}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := pal.Set(0, Color{R: 2}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if pal.Len() != 1 {
		t.Fatalf("overwrite should not grow palette, len %d", pal.Len())
	}
	if c, _ := pal.Color(0); c.R != 2 {
		t.Fatalf("expected overwritten color")
	}

	var nilPal *Palette
	if _, ok := nilPal.Color(0); ok || nilPal.Len() != 0 {
		t.Fatalf("nil palette should be empty")
	}
}

func TestColorConversions(t *testing.T) {
	c := SetColorRGB(128, 0, 255)
	if c.Hex() != "#8000ff" {
		t.Fatalf("unexpected hex %q", c.Hex())
	}
	if back := ColorFromColorful(c.Colorful()); back != c {
		t.Fatalf("colorful conversion mismatch: %+v", back)
	}
	if got := ColorFromColorful(colorful.Color{R: 1.5, G: -0.2, B: 0.5}); got != (Color{R: 255, G: 0, B: 128}) {
		t.Fatalf("expected clamped color, got %+v", got)
	}
	short, err := ParseHexColor("#f0f")
	if err != nil || short != unknownColor {
		t.Fatalf("short hex: %+v %v", short, err)
	}
	r, g, b := SetColorRGB(0, 128, 255).Normalized()
	if r != 0 || g != 0.5 || b != 255.0/256.0 {
		t.Fatalf("unexpected normalized %v %v %v", r, g, b)
	}
}
