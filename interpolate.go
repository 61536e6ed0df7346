package tint

import icolor "github.com/gogpu/tint/internal/color"

// Space selects the color representation used for interpolation.
type Space uint8

const (
	// SpaceRGB interpolates gamma-encoded sRGB channels.
	SpaceRGB Space = iota
	// SpaceHSL interpolates hue, saturation and lightness.
	// Hue travels along the shorter arc of the circle.
	SpaceHSL
	// SpaceLinearRGB interpolates linear-light RGB, which avoids the dark
	// band sRGB interpolation produces between saturated colors.
	SpaceLinearRGB
	// SpaceLab interpolates CIE L*a*b*, which is perceptually more uniform.
	SpaceLab
)

// String returns the space name.
func (s Space) String() string {
	switch s {
	case SpaceRGB:
		return "rgb"
	case SpaceHSL:
		return "hsl"
	case SpaceLinearRGB:
		return "linear-rgb"
	case SpaceLab:
		return "lab"
	default:
		return "unknown"
	}
}

// Interpolate returns the color at t between a (t=0) and b (t=1), computing
// every component, alpha included, as a + t*(b-a) in the given space.
// t is clamped to [0, 1], and the endpoints are returned unchanged at 0 and 1.
// Unknown spaces fall back to SpaceRGB.
func Interpolate(space Space, a, b Color, t float64) Color {
	t = clamp01(t)
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	switch space {
	case SpaceHSL:
		return interpolateHSL(a, b, t)
	case SpaceLinearRGB:
		return interpolateLinear(a, b, t)
	case SpaceLab:
		return interpolateLab(a, b, t)
	default:
		return interpolateRGB(a, b, t)
	}
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func interpolateRGB(a, b Color, t float64) Color {
	return RGBA(
		lerp(a.r, b.r, t),
		lerp(a.g, b.g, t),
		lerp(a.b, b.b, t),
		lerp(a.a, b.a, t),
	)
}

// interpolateHSL interpolates in HSL. A gray endpoint has no meaningful
// hue, so it borrows the hue of the other endpoint.
func interpolateHSL(a, b Color, t float64) Color {
	ha, hb := a.HSLA(), b.HSLA()
	switch {
	case ha.S == 0 && hb.S != 0:
		ha.H = hb.H
	case hb.S == 0 && ha.S != 0:
		hb.H = ha.H
	}

	dh := hb.H - ha.H
	if dh > 0.5 {
		dh--
	} else if dh < -0.5 {
		dh++
	}

	return FromHSLA(HSLA{
		H: wrapHue(ha.H + t*dh),
		S: lerp(ha.S, hb.S, t),
		L: lerp(ha.L, hb.L, t),
		A: lerp(ha.A, hb.A, t),
	})
}

// interpolateLinear performs linear interpolation between two colors in linear sRGB space.
func interpolateLinear(a, b Color, t float64) Color {
	ar, ag, ab := icolor.SRGBToLinearRGB(a.r, a.g, a.b)
	br, bg, bb := icolor.SRGBToLinearRGB(b.r, b.g, b.b)

	r, g, bl := icolor.LinearToSRGBRGB(lerp(ar, br, t), lerp(ag, bg, t), lerp(ab, bb, t))
	return RGBA(r, g, bl, lerp(a.a, b.a, t))
}

func interpolateLab(a, b Color, t float64) Color {
	la, lb := a.Lab(), b.Lab()
	return FromLabAlpha(Lab{
		L: lerp(la.L, lb.L, t),
		A: lerp(la.A, lb.A, t),
		B: lerp(la.B, lb.B, t),
	}, lerp(a.a, b.a, t))
}
