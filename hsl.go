package tint

import "math"

// HSLA is the hue-saturation-lightness view of a Color.
//
// H is the hue in turns: 0 is red and 1 is a full circle (so 120 degrees is
// 1/3, see Degrees). S, L and A are in [0, 1].
type HSLA struct {
	H, S, L, A float64
}

// Degrees converts an angle in degrees to turns, the unit used for hue.
// Degrees(360) == 1.
func Degrees(d float64) float64 {
	return d / 360
}

// HSL creates an opaque color from hue (turns), saturation and lightness.
func HSL(h, s, l float64) Color {
	return FromHSLA(HSLA{H: h, S: s, L: l, A: 1})
}

// HSLAColor creates a color from hue (turns), saturation, lightness and alpha.
func HSLAColor(h, s, l, a float64) Color {
	return FromHSLA(HSLA{H: h, S: s, L: l, A: a})
}

// HSLA returns the HSL view of the color. Hue is in [0, 1); achromatic
// colors report hue 0 and saturation 0.
func (c Color) HSLA() HSLA {
	maxC := max(c.r, c.g, c.b)
	minC := min(c.r, c.g, c.b)
	l := (maxC + minC) / 2

	chroma := maxC - minC
	if chroma == 0 {
		return HSLA{H: 0, S: 0, L: l, A: c.a}
	}

	s := chroma / (1 - math.Abs(2*l-1))

	var h float64
	switch maxC {
	case c.r:
		h = math.Mod((c.g-c.b)/chroma, 6)
	case c.g:
		h = (c.b-c.r)/chroma + 2
	default:
		h = (c.r-c.g)/chroma + 4
	}
	h = wrapHue(h / 6)

	return HSLA{H: h, S: clamp01(s), L: l, A: c.a}
}

// FromHSLA converts an HSL view back to a Color. The hue wraps around the
// circle, the other components are clamped to [0, 1].
func FromHSLA(h HSLA) Color {
	hue := wrapHue(h.H)
	s := clamp01(h.S)
	l := clamp01(h.L)

	if s == 0 {
		return RGBA(l, l, l, h.A)
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		// Same as l + s - l*s, but exact at l == 1.
		q = l + s*(1-l)
	}
	p := 2*l - q

	return RGBA(
		hueToRGB(p, q, hue+1.0/3),
		hueToRGB(p, q, hue),
		hueToRGB(p, q, hue-1.0/3),
		h.A,
	)
}

// hueToRGB evaluates one channel of the HSL to RGB conversion at hue t (turns).
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// wrapHue maps any hue to [0, 1).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	// -tiny + 1 may round to exactly 1.
	if h >= 1 {
		h = 0
	}
	return h
}
