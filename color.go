package ggchart

import "image/color"

// RGBA is the host-native color representation: red, green, blue, and alpha
// components, each in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Transparent = RGBA{R: 0, G: 0, B: 0, A: 0}
	Black       = RGBA{R: 0, G: 0, B: 0, A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
	Red         = RGBA{R: 1, G: 0, B: 0, A: 1}
	Green       = RGBA{R: 0, G: 1, B: 0, A: 1}
	Blue        = RGBA{R: 0, G: 0, B: 1, A: 1}
)

// WithAlpha returns the color with its alpha channel set to alpha.
// The RGB components are preserved.
func (c RGBA) WithAlpha(alpha float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// ARGB is the charting color model: alpha, red, green, blue, each an 8-bit
// channel. This is the color type series styling carries; it resolves to the
// host-native RGBA before any drawing happens.
type ARGB struct {
	A, R, G, B uint8
}

// NewARGB creates an ARGB color from 8-bit channel values.
func NewARGB(a, r, g, b uint8) ARGB {
	return ARGB{A: a, R: r, G: g, B: b}
}

// RGBA resolves the charting color into the host-native representation.
func (c ARGB) RGBA() RGBA {
	return RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// resolveColor maps an optional charting color to an optional host color.
// Absence stays absence: a nil input never turns into a drawable default.
func resolveColor(c *ARGB) (RGBA, bool) {
	if c == nil {
		return RGBA{}, false
	}
	return c.RGBA(), true
}
