package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestRun(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	*argPalette = filepath.Join("..", "..", "testdata", "palette.yaml")
	*argOut = dir
	*argValidate = true
	if err := run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "minecraft.mtl"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(b), "newmtl unknown\nKd 1 0 1\n\n") {
		t.Fatalf("unexpected output: %q", b)
	}
	if got := strings.Count(string(b), "newmtl "); got != 8 {
		t.Fatalf("expected 8 materials, got %d", got)
	}
}

func TestRunMissingPalette(t *testing.T) {
	*argPalette = filepath.Join(t.TempDir(), "none.yaml")
	if err := run(); err == nil {
		t.Fatalf("expected error for missing palette")
	}
}
