package tint

import icolor "github.com/gogpu/tint/internal/color"

// Lab is the CIE 1976 L*a*b* view of a Color, relative to the D65 white point.
//
// L is the lightness, roughly [0, 100]. A and B are unbounded chroma axes,
// about [-128, 127] for colors inside the sRGB gamut. Lab carries no alpha.
type Lab struct {
	L, A, B float64
}

// XYZ is the CIE 1931 XYZ view of a Color, scaled so that D65 white has Y = 100.
type XYZ struct {
	X, Y, Z float64
}

// XYZ returns the CIE XYZ view of the color.
func (c Color) XYZ() XYZ {
	t := icolor.SRGBToXYZ(c.r, c.g, c.b)
	return XYZ{X: t.X, Y: t.Y, Z: t.Z}
}

// Lab returns the CIE L*a*b* view of the color. Alpha is dropped.
func (c Color) Lab() Lab {
	t := icolor.XYZToLab(icolor.SRGBToXYZ(c.r, c.g, c.b), icolor.D65)
	return Lab{L: t.X, A: t.Y, B: t.Z}
}

// FromXYZ converts CIE XYZ to an opaque Color, clamping out-of-gamut values.
func FromXYZ(xyz XYZ) Color {
	r, g, b := icolor.XYZToSRGB(icolor.Triple{X: xyz.X, Y: xyz.Y, Z: xyz.Z})
	return RGB(r, g, b)
}

// FromLab converts CIE L*a*b* to an opaque Color, clamping out-of-gamut
// values to [0, 1] after gamma encoding.
func FromLab(lab Lab) Color {
	xyz := icolor.LabToXYZ(icolor.Triple{X: lab.L, Y: lab.A, Z: lab.B}, icolor.D65)
	r, g, b := icolor.XYZToSRGB(xyz)
	return RGB(r, g, b)
}

// FromLabAlpha is FromLab with an explicit alpha.
func FromLabAlpha(lab Lab, alpha float64) Color {
	return FromLab(lab).WithAlpha(alpha)
}
