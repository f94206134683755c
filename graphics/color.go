package graphics

import "image/color"

// RGBA is a color with red, green, blue, and alpha components, each in the
// range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Palette used by widget interaction states. These are deliberately plain
// primaries; widgets that want theming should set fill colors themselves.
var (
	Red   = RGBA{R: 1, A: 1}
	Green = RGBA{G: 1, A: 1}
	Blue  = RGBA{B: 1, A: 1}
	White = RGBA{R: 1, G: 1, B: 1, A: 1}
	Black = RGBA{A: 1}
)

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// RGBA implements color.Color, returning alpha-premultiplied 16-bit
// components.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return uint32(clampUnit(c.R*c.A) * 65535),
		uint32(clampUnit(c.G*c.A) * 65535),
		uint32(clampUnit(c.B*c.A) * 65535),
		uint32(clampUnit(c.A) * 65535)
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 65535,
	}
}

// premultiplied returns the color as premultiplied float32 components for
// vertex data.
func (c RGBA) premultiplied() [4]float32 {
	a := clampUnit(c.A)
	return [4]float32{
		float32(clampUnit(c.R) * a),
		float32(clampUnit(c.G) * a),
		float32(clampUnit(c.B) * a),
		float32(a),
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Compile-time check that RGBA satisfies color.Color.
var _ color.Color = RGBA{}
