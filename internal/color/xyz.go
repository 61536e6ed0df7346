package color

import "math"

// sRGB (D65) linear RGB to XYZ, scaled so that white has Y = 100.
var rgbToXYZ = [3][3]float64{
	{41.24564, 35.75761, 18.04375},
	{21.26729, 71.51522, 7.21750},
	{1.93339, 11.91920, 95.03041},
}

// Inverse of rgbToXYZ, expecting XYZ on the 0-100 scale.
var xyzToRGB = [3][3]float64{
	{0.032404542, -0.015371385, -0.004985314},
	{-0.009692660, 0.018760108, 0.000415560},
	{0.000556434, -0.002040259, 0.010572252},
}

const (
	labDelta  = 6.0 / 29.0
	labEpsLin = labDelta * labDelta * labDelta // (6/29)^3
)

// LinearRGBToXYZ converts linear RGB in [0,1] to XYZ (0-100 scale).
func LinearRGBToXYZ(r, g, b float64) Triple {
	m := &rgbToXYZ
	return Triple{
		X: m[0][0]*r + m[0][1]*g + m[0][2]*b,
		Y: m[1][0]*r + m[1][1]*g + m[1][2]*b,
		Z: m[2][0]*r + m[2][1]*g + m[2][2]*b,
	}
}

// XYZToLinearRGB converts XYZ (0-100 scale) to unclamped linear RGB.
func XYZToLinearRGB(xyz Triple) (float64, float64, float64) {
	m := &xyzToRGB
	r := m[0][0]*xyz.X + m[0][1]*xyz.Y + m[0][2]*xyz.Z
	g := m[1][0]*xyz.X + m[1][1]*xyz.Y + m[1][2]*xyz.Z
	b := m[2][0]*xyz.X + m[2][1]*xyz.Y + m[2][2]*xyz.Z
	return r, g, b
}

// SRGBToXYZ converts gamma-encoded sRGB in [0,1] to XYZ.
func SRGBToXYZ(r, g, b float64) Triple {
	return LinearRGBToXYZ(SRGBToLinearRGB(r, g, b))
}

// XYZToSRGB converts XYZ to gamma-encoded sRGB, clamped to [0,1].
func XYZToSRGB(xyz Triple) (float64, float64, float64) {
	return LinearToSRGBRGB(XYZToLinearRGB(xyz))
}

// labF is the CIE Lab companding function.
func labF(t float64) float64 {
	if t > labEpsLin {
		return math.Cbrt(t)
	}
	return (841.0/108.0)*t + 4.0/29.0
}

// labFInv is the inverse of labF.
func labFInv(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return (108.0 / 841.0) * (t - 4.0/29.0)
}

// XYZToLab converts XYZ to CIE L*a*b* relative to white.
// The returned triple is (L, a, b) in X, Y, Z order.
func XYZToLab(xyz, white Triple) Triple {
	fx := labF(xyz.X / white.X)
	fy := labF(xyz.Y / white.Y)
	fz := labF(xyz.Z / white.Z)
	return Triple{
		X: 116*fy - 16,
		Y: 500 * (fx - fy),
		Z: 200 * (fy - fz),
	}
}

// LabToXYZ is the inverse of XYZToLab.
func LabToXYZ(lab, white Triple) Triple {
	fy := (lab.X + 16) / 116
	fx := fy + lab.Y/500
	fz := fy - lab.Z/200
	return Triple{
		X: white.X * labFInv(fx),
		Y: white.Y * labFInv(fy),
		Z: white.Z * labFInv(fz),
	}
}
