package tint

import "math"

// Luminance returns the WCAG 2.0 relative luminance of the color, between
// 0 (black) and 1 (white). Alpha is ignored.
//
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
func Luminance(c Color) float64 {
	return 0.2126*wcagLinear(c.r) + 0.7152*wcagLinear(c.g) + 0.0722*wcagLinear(c.b)
}

// wcagLinear is the sRGB linearization with the WCAG 2.0 threshold.
func wcagLinear(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG 2.0 contrast ratio between two colors,
// from 1 (identical luminance) to 21 (black on white). It is symmetric.
//
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef
func ContrastRatio(a, b Color) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// MaximumContrast returns the candidate with the highest contrast ratio
// against base. The first candidate wins ties. ok is false when there are
// no candidates.
func MaximumContrast(base Color, candidates []Color) (best Color, ok bool) {
	bestRatio := 0.0
	for _, c := range candidates {
		if r := ContrastRatio(base, c); !ok || r > bestRatio {
			best, bestRatio, ok = c, r, true
		}
	}
	return best, ok
}
