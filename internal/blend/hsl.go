package blend

// Lum returns the luminosity of a color using the W3C coefficients.
// Formula: Lum(C) = 0.3*R + 0.59*G + 0.11*B
func Lum(c RGB) float64 {
	return 0.30*c.R + 0.59*c.G + 0.11*c.B
}

// Sat returns the saturation (max - min) of a color.
func Sat(c RGB) float64 {
	return max(c.R, c.G, c.B) - min(c.R, c.G, c.B)
}

// ClipColor brings components back into [0,1] while preserving luminosity.
func ClipColor(c RGB) RGB {
	l := Lum(c)
	n := min(c.R, c.G, c.B)
	x := max(c.R, c.G, c.B)

	if n < 0 {
		s := l / (l - n)
		c = RGB{R: l + (c.R-l)*s, G: l + (c.G-l)*s, B: l + (c.B-l)*s}
	}
	if x > 1 {
		s := (1 - l) / (x - l)
		c = RGB{R: l + (c.R-l)*s, G: l + (c.G-l)*s, B: l + (c.B-l)*s}
	}
	return c
}

// SetLum shifts a color to luminosity l, then clips.
func SetLum(c RGB, l float64) RGB {
	d := l - Lum(c)
	return ClipColor(RGB{R: c.R + d, G: c.G + d, B: c.B + d})
}

// SetSat rescales a color to saturation s, keeping the ordering of its
// components. Gray input stays unchanged.
func SetSat(c RGB, s float64) RGB {
	minPtr, midPtr, maxPtr := sortRGB(&c.R, &c.G, &c.B)
	if *maxPtr > *minPtr {
		*midPtr = (*midPtr - *minPtr) * s / (*maxPtr - *minPtr)
		*maxPtr = s
		*minPtr = 0
	}
	return c
}

// sortRGB returns pointers to r, g, b sorted by value (minPtr, midPtr, maxPtr).
func sortRGB(r, g, b *float64) (minPtr, midPtr, maxPtr *float64) {
	switch {
	case *r <= *g && *g <= *b:
		return r, g, b
	case *r <= *b && *b <= *g:
		return r, b, g
	case *b <= *r && *r <= *g:
		return b, r, g
	case *g <= *r && *r <= *b:
		return g, r, b
	case *g <= *b && *b <= *r:
		return g, b, r
	default:
		return b, g, r
	}
}

// hslBlendHue: SetLum(SetSat(Cs, Sat(Cb)), Lum(Cb))
func hslBlendHue(cs, cb RGB) RGB {
	return SetLum(SetSat(cs, Sat(cb)), Lum(cb))
}

// hslBlendSaturation: SetLum(SetSat(Cb, Sat(Cs)), Lum(Cb))
func hslBlendSaturation(cs, cb RGB) RGB {
	return SetLum(SetSat(cb, Sat(cs)), Lum(cb))
}

// hslBlendColor: SetLum(Cs, Lum(Cb))
func hslBlendColor(cs, cb RGB) RGB {
	return SetLum(cs, Lum(cb))
}

// hslBlendLuminosity: SetLum(Cb, Lum(Cs))
func hslBlendLuminosity(cs, cb RGB) RGB {
	return SetLum(cb, Lum(cs))
}
