package blockmtl

import "errors"

var (
	// ErrWrite indicates the material library could not be opened or written.
	ErrWrite = errors.New("mtl write error")

	// ErrParse indicates a malformed material library.
	ErrParse = errors.New("mtl parse error")

	// ErrPalette indicates an invalid palette definition.
	ErrPalette = errors.New("palette error")
)
