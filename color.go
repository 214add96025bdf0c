package blockmtl

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an 8-bit RGB color.
type Color struct {
	R uint8 `json:"r" yaml:"r"` // Red channel component
	G uint8 `json:"g" yaml:"g"` // Green channel component
	B uint8 `json:"b" yaml:"b"` // Blue channel component
}

// unknownColor is the reserved magenta of the fallback material.
var unknownColor = Color{R: 255, G: 0, B: 255}

// SetColorRGB creates a Color from 8-bit channels.
func SetColorRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Normalized returns channels divided by 256, as written to Kd lines.
func (c Color) Normalized() (r, g, b float64) {
	return float64(c.R) / 256.0, float64(c.G) / 256.0, float64(c.B) / 256.0
}

// Colorful converts color to a colorful.Color in [0,1] space.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// ColorFromColorful converts a colorful.Color, clamping it into the RGB gamut.
func ColorFromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// ParseHexColor parses "#rrggbb" or "#rgb".
func ParseHexColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}

	return ColorFromColorful(c), nil
}

// roundHalfUp rounds v to two decimals with ties away from zero.
func roundHalfUp(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
