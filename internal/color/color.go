// Package color provides the numeric color space conversions used by tint.
//
// All functions operate on float64 components. sRGB and linear RGB components
// are in [0, 1], XYZ components use the 0-100 scale with the D65 white point
// (Y = 100 for diffuse white), and Lab follows CIE 1976 L*a*b*.
package color

// Triple holds three color components in whatever space the caller names.
type Triple struct {
	X, Y, Z float64
}

// D65 is the CIE standard illuminant D65 reference white on the 0-100 scale.
var D65 = Triple{X: 95.047, Y: 100, Z: 108.883}
