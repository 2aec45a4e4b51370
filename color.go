package raster2d

import (
	"math"

	icolor "github.com/gogpu/raster2d/internal/color"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements the standard color.Color interface: it returns
// alpha-premultiplied components scaled to the 16-bit range.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	pm := c.Premultiply()
	r = uint32(clamp65535(pm.R * 65535))
	g = uint32(clamp65535(pm.G * 65535))
	b = uint32(clamp65535(pm.B * 65535))
	a = uint32(clamp65535(pm.A * 65535))
	return
}

// PremultipliedBytes returns the color as premultiplied 8-bit RGBA
// channels, rounded to nearest, the format internal/accum.ColorFiller
// composites with.
func (c RGBA) PremultipliedBytes() (r, g, b, a uint8) {
	pm := c.Premultiply()
	return uint8(clamp255(pm.R*255) + 0.5), uint8(clamp255(pm.G*255) + 0.5), uint8(clamp255(pm.B*255) + 0.5), uint8(clamp255(pm.A*255) + 0.5)
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// ToLinear converts an sRGB-encoded color to linear light. Alpha is
// left unchanged, since it is never gamma-encoded.
func (c RGBA) ToLinear() RGBA {
	return RGBA{
		R: float64(icolor.SRGBToLinear(float32(c.R))),
		G: float64(icolor.SRGBToLinear(float32(c.G))),
		B: float64(icolor.SRGBToLinear(float32(c.B))),
		A: c.A,
	}
}

// FromLinear converts a linear-light color back to sRGB encoding.
// Alpha is left unchanged, since it is never gamma-encoded.
func (c RGBA) FromLinear() RGBA {
	return RGBA{
		R: float64(icolor.LinearToSRGB(float32(c.R))),
		G: float64(icolor.LinearToSRGB(float32(c.G))),
		B: float64(icolor.LinearToSRGB(float32(c.B))),
		A: c.A,
	}
}

// Premultiply returns a premultiplied color.
func (c RGBA) Premultiply() RGBA {
	return RGBA{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp65535 restricts a value to [0, 65535] range.
func clamp65535(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 65535 {
		return 65535
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA2(0, 0, 0, 0)
)

// HSL creates a color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float64) RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB(r+m, g+m, b+m)
}
