package tint

// Mix blends two colors equally. It is WeightedMix with weight 0.5.
func Mix(a, b Color) Color {
	return WeightedMix(a, b, 0.5)
}

// WeightedMix blends a and b, weight being the share of a (clamped to [0, 1]):
// weight 1 returns a and weight 0 returns b.
//
// Channel weights are corrected for the alpha difference so that a more
// opaque color contributes more, while alpha itself mixes linearly. This is
// the algorithm of the Sass mix() function.
func WeightedMix(a, b Color, weight float64) Color {
	weight = clamp01(weight)
	w := mixWeight(a.a, b.a, weight)

	return RGBA(
		a.r*w+b.r*(1-w),
		a.g*w+b.g*(1-w),
		a.b*w+b.b*(1-w),
		a.a*weight+b.a*(1-weight),
	)
}

// mixWeight returns the alpha-corrected channel weight of the first color.
func mixWeight(a1, a2, weight float64) float64 {
	d := a1 - a2
	w1 := weight*2 - 1
	w2 := w1
	if w1*d != -1 {
		w2 = (w1 + d) / (1 + w1*d)
	}
	return (w2 + 1) / 2
}
