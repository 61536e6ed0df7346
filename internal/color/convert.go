package color

import "math"

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB (OETF - Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input and output are in range [0,1].
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// SRGBToLinearRGB converts an sRGB triple to linear RGB.
func SRGBToLinearRGB(r, g, b float64) (float64, float64, float64) {
	return SRGBToLinear(r), SRGBToLinear(g), SRGBToLinear(b)
}

// LinearToSRGBRGB converts a linear RGB triple to sRGB, clamping the
// result to [0,1]. Out-of-gamut linear values are common after Lab or
// XYZ round trips, so the clamp is part of the encoding.
func LinearToSRGBRGB(r, g, b float64) (float64, float64, float64) {
	return Clamp01(LinearToSRGB(r)), Clamp01(LinearToSRGB(g)), Clamp01(LinearToSRGB(b))
}

// Clamp01 restricts x to [0,1]. NaN maps to 0.
func Clamp01(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x >= 0 {
		return x
	}
	// x < 0 or NaN
	return 0
}

// ToByte clamps a [0,1] component and converts it to [0,255] with rounding.
func ToByte(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
