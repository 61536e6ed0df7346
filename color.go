package tint

import (
	"image/color"
	"math"

	icolor "github.com/gogpu/tint/internal/color"
)

// Color is an immutable sRGB color with straight (non-premultiplied) alpha.
// Each component is in the range [0, 1]; constructors clamp out-of-range
// input, so every Color value satisfies that invariant.
//
// The zero value is transparent black.
type Color struct {
	r, g, b, a float64
}

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

// RGB creates an opaque color from RGB components in [0, 1].
func RGB(r, g, b float64) Color {
	return RGBA(r, g, b, 1)
}

// RGBA creates a color from RGBA components in [0, 1].
// Components outside that range are clamped; NaN becomes 0.
func RGBA(r, g, b, a float64) Color {
	return Color{
		r: clamp01(r),
		g: clamp01(g),
		b: clamp01(b),
		a: clamp01(a),
	}
}

// RGB255 creates an opaque color from 0-255 channels.
func RGB255(r, g, b int) Color {
	return RGBA255(r, g, b, 1)
}

// RGBA255 creates a color from 0-255 channels and an alpha in [0, 1].
func RGBA255(r, g, b int, a float64) Color {
	return RGBA(float64(r)/255, float64(g)/255, float64(b)/255, a)
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	// color.Color is alpha-premultiplied.
	fa := float64(a)
	return RGBA(float64(r)/fa, float64(g)/fa, float64(b)/fa, fa/0xffff)
}

// R returns the red component in [0, 1].
func (c Color) R() float64 { return c.r }

// G returns the green component in [0, 1].
func (c Color) G() float64 { return c.g }

// B returns the blue component in [0, 1].
func (c Color) B() float64 { return c.b }

// A returns the alpha component in [0, 1].
func (c Color) A() float64 { return c.a }

// To255 returns the color channels rounded to 0-255 and the alpha unchanged.
func (c Color) To255() (r, g, b uint8, a float64) {
	return icolor.ToByte(c.r), icolor.ToByte(c.g), icolor.ToByte(c.b), c.a
}

// RGBA implements color.Color. It returns alpha-premultiplied 16-bit values.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.a*0xffff + 0.5)
	r = uint32(c.r*c.a*0xffff + 0.5)
	g = uint32(c.g*c.a*0xffff + 0.5)
	b = uint32(c.b*c.a*0xffff + 0.5)
	return r, g, b, a
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.a = clamp01(a)
	return c
}

// Opaque returns the color with alpha 1.
func (c Color) Opaque() Color {
	c.a = 1
	return c
}

// Equal reports whether two colors have identical components.
func (c Color) Equal(other Color) bool {
	return c == other
}

// ApproxEqual reports whether every component of c and other differs by at
// most tol.
func (c Color) ApproxEqual(other Color, tol float64) bool {
	return math.Abs(c.r-other.r) <= tol &&
		math.Abs(c.g-other.g) <= tol &&
		math.Abs(c.b-other.b) <= tol &&
		math.Abs(c.a-other.a) <= tol
}

// String returns the color in hex notation, with alpha when not opaque.
func (c Color) String() string {
	return c.HexAlpha()
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
	Transparent = RGBA(0, 0, 0, 0)
)

// clamp01 restricts x to [0, 1]. NaN becomes 0.
func clamp01(x float64) float64 {
	return icolor.Clamp01(x)
}
