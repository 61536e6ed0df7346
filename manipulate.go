package tint

// Lighten returns a color that is lighter by the given absolute HSL
// lightness amount. The result is clamped, so any amount >= 1 yields white.
func Lighten(amount float64, c Color) Color {
	h := c.HSLA()
	h.L = clamp01(h.L + amount)
	return FromHSLA(h)
}

// Darken returns a color that is darker by the given absolute HSL
// lightness amount. The result is clamped, so any amount >= 1 yields black.
func Darken(amount float64, c Color) Color {
	return Lighten(-amount, c)
}

// Saturate returns a color that is more saturated by the given absolute
// HSL saturation amount (ranges enforced).
func Saturate(amount float64, c Color) Color {
	h := c.HSLA()
	h.S = clamp01(h.S + amount)
	return FromHSLA(h)
}

// Desaturate returns a color that is less saturated by the given absolute
// HSL saturation amount (ranges enforced).
func Desaturate(amount float64, c Color) Color {
	return Saturate(-amount, c)
}

// Grayscale removes all saturation, keeping lightness and alpha.
func Grayscale(c Color) Color {
	h := c.HSLA()
	h.S = 0
	return FromHSLA(h)
}

// FadeIn increases alpha by amount, clamped to [0, 1].
func FadeIn(amount float64, c Color) Color {
	return c.WithAlpha(c.a + amount)
}

// FadeOut decreases alpha by amount, clamped to [0, 1].
func FadeOut(amount float64, c Color) Color {
	return c.WithAlpha(c.a - amount)
}

// RotateHue turns the hue by the given number of degrees. Hue is circular:
// negative and larger-than-360 rotations wrap around.
func RotateHue(degrees float64, c Color) Color {
	h := c.HSLA()
	h.H = wrapHue(h.H + Degrees(degrees))
	return FromHSLA(h)
}

// Complement rotates the hue by 180 degrees.
func Complement(c Color) Color {
	return RotateHue(180, c)
}

// Invert returns the RGB complement, keeping alpha.
func Invert(c Color) Color {
	return Color{r: 1 - c.r, g: 1 - c.g, b: 1 - c.b, a: c.a}
}

// HSLScale holds proportional scale factors for ScaleHSL, each in [-1, 1].
type HSLScale struct {
	Saturation float64
	Lightness  float64
	Alpha      float64
}

// RGBScale holds proportional scale factors for ScaleRGB, each in [-1, 1].
type RGBScale struct {
	Red   float64
	Green float64
	Blue  float64
	Alpha float64
}

// ScaleHSL scales saturation, lightness and alpha proportionally.
// A positive factor s moves a component v toward 1 by s*(1-v), a negative
// factor moves it toward 0 by |s|*v. A factor of 1 (or -1) reaches the bound.
func ScaleHSL(scale HSLScale, c Color) Color {
	h := c.HSLA()
	h.S = scaleComponent(scale.Saturation, h.S)
	h.L = scaleComponent(scale.Lightness, h.L)
	h.A = scaleComponent(scale.Alpha, h.A)
	return FromHSLA(h)
}

// ScaleRGB scales red, green, blue and alpha proportionally, with the same
// policy as ScaleHSL.
func ScaleRGB(scale RGBScale, c Color) Color {
	return RGBA(
		scaleComponent(scale.Red, c.r),
		scaleComponent(scale.Green, c.g),
		scaleComponent(scale.Blue, c.b),
		scaleComponent(scale.Alpha, c.a),
	)
}

func scaleComponent(s, v float64) float64 {
	s = max(-1, min(1, s))
	v = clamp01(v)
	if s > 0 {
		return v + (1-v)*s
	}
	return v + v*s
}
