package blend

import "math"

// normal returns the source unchanged.
func normal(_, cs float64) float64 {
	return cs
}

// multiply multiplies source and backdrop.
// Formula: B(Cb, Cs) = Cb * Cs
func multiply(cb, cs float64) float64 {
	return cb * cs
}

// screen produces a lighter result than multiply.
// Formula: B(Cb, Cs) = 1 - (1 - Cb) * (1 - Cs)
func screen(cb, cs float64) float64 {
	return 1 - (1-cb)*(1-cs)
}

// overlay multiplies or screens depending on the backdrop.
// Formula: if Cb < 0.5: 2*Cb*Cs, else: 1 - 2*(1-Cb)*(1-Cs)
func overlay(cb, cs float64) float64 {
	if cb < 0.5 {
		return 2 * cb * cs
	}
	return 1 - 2*(1-cb)*(1-cs)
}

// hardLight is overlay with the layers swapped.
func hardLight(cb, cs float64) float64 {
	return overlay(cs, cb)
}

// softLight darkens or lightens depending on the backdrop. The branch is
// chosen by Cb, so a backdrop of exactly 0.5 takes the square-root branch.
//
//	Cb < 0.5:  2*Cb*Cs + Cb^2*(1 - 2*Cs)
//	otherwise: 2*Cb*(1 - Cs) + sqrt(Cb)*(2*Cs - 1)
func softLight(cb, cs float64) float64 {
	if cb < 0.5 {
		return 2*cb*cs + cb*cb*(1-2*cs)
	}
	return 2*cb*(1-cs) + math.Sqrt(cb)*(2*cs-1)
}

// difference produces the absolute difference.
// Formula: B(Cb, Cs) = |Cb - Cs|
func difference(cb, cs float64) float64 {
	return math.Abs(cb - cs)
}

// exclusion is similar to difference but with lower contrast.
// Formula: B(Cb, Cs) = Cb + Cs - 2*Cb*Cs
func exclusion(cb, cs float64) float64 {
	return cb + cs - 2*cb*cs
}

// darken selects the darker channel.
func darken(cb, cs float64) float64 {
	return math.Min(cb, cs)
}

// lighten selects the lighter channel.
func lighten(cb, cs float64) float64 {
	return math.Max(cb, cs)
}

// colorDodge brightens the backdrop to reflect the source.
// Formula: if Cb == 0: 0; if Cs == 1: 1; else: min(1, Cb / (1 - Cs))
func colorDodge(cb, cs float64) float64 {
	if cb == 0 {
		return 0
	}
	if cs >= 1 {
		return 1
	}
	return math.Min(1, cb/(1-cs))
}

// colorBurn darkens the backdrop to reflect the source.
// Formula: if Cb == 1: 1; if Cs == 0: 0; else: 1 - min(1, (1 - Cb) / Cs)
func colorBurn(cb, cs float64) float64 {
	if cb >= 1 {
		return 1
	}
	if cs <= 0 {
		return 0
	}
	return 1 - math.Min(1, (1-cb)/cs)
}
