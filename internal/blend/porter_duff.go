package blend

// SourceOver composites an unpremultiplied source over an unpremultiplied
// backdrop and returns the unpremultiplied result.
//
//	ao = as + ab*(1-as)
//	co = (cs*as + cb*ab*(1-as)) / ao
func SourceOver(cs RGB, as float64, cb RGB, ab float64) (RGB, float64) {
	if as >= 1 {
		return cs, 1
	}
	if as <= 0 {
		return cb, ab
	}

	invSa := 1.0 - as
	outA := as + ab*invSa
	if outA == 0 {
		return RGB{}, 0
	}

	return RGB{
		R: clamp01((cs.R*as + cb.R*ab*invSa) / outA),
		G: clamp01((cs.G*as + cb.G*ab*invSa) / outA),
		B: clamp01((cs.B*as + cb.B*ab*invSa) / outA),
	}, outA
}
