package blend

import (
	"math"
	"testing"
)

// TestLum tests the luminosity calculation.
func TestLum(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want float64
	}{
		{"black", RGB{0, 0, 0}, 0},
		{"white", RGB{1, 1, 1}, 1},
		{"red", RGB{1, 0, 0}, 0.30},
		{"green", RGB{0, 1, 0}, 0.59},
		{"blue", RGB{0, 0, 1}, 0.11},
		{"gray", RGB{0.5, 0.5, 0.5}, 0.5},
		{"yellow", RGB{1, 1, 0}, 0.89},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lum(tt.c); math.Abs(got-tt.want) > epsilon {
				t.Errorf("Lum(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestSat(t *testing.T) {
	if got := Sat(RGB{0.2, 0.9, 0.5}); math.Abs(got-0.7) > epsilon {
		t.Errorf("Sat = %v, want 0.7", got)
	}
	if got := Sat(RGB{0.4, 0.4, 0.4}); got != 0 {
		t.Errorf("Sat(gray) = %v, want 0", got)
	}
}

func TestSetSat(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		s    float64
		want RGB
	}{
		{"rescale", RGB{0.2, 0.6, 1.0}, 0.5, RGB{0, 0.25, 0.5}},
		{"reordered", RGB{1.0, 0.2, 0.6}, 0.4, RGB{0.4, 0, 0.2}},
		{"gray unchanged", RGB{0.3, 0.3, 0.3}, 0.8, RGB{0.3, 0.3, 0.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SetSat(tt.c, tt.s); !rgbNear(got, tt.want, epsilon) {
				t.Errorf("SetSat(%v, %v) = %v, want %v", tt.c, tt.s, got, tt.want)
			}
		})
	}
}

func TestSetLumPreservesTarget(t *testing.T) {
	for _, c := range []RGB{{1, 0, 0}, {0.2, 0.5, 0.9}, {0, 0, 0}, {1, 1, 1}} {
		for _, l := range []float64{0, 0.25, 0.5, 0.75, 1} {
			got := SetLum(c, l)
			if math.Abs(Lum(got)-l) > 1e-6 {
				t.Errorf("Lum(SetLum(%v, %v)) = %v", c, l, Lum(got))
			}
			for _, v := range []float64{got.R, got.G, got.B} {
				if v < -epsilon || v > 1+epsilon {
					t.Errorf("SetLum(%v, %v) = %v out of range", c, l, got)
				}
			}
		}
	}
}

func TestNonSeparableModes(t *testing.T) {
	red := RGB{1, 0, 0}
	gray := RGB{0.5, 0.5, 0.5}

	// Gray source carries no saturation: Saturation mode turns red gray.
	got := Mix(Saturation, red, gray)
	if Sat(got) > epsilon {
		t.Errorf("Mix(Saturation, red, gray) = %v, want achromatic", got)
	}

	// Luminosity keeps the backdrop's luminosity out of the result.
	got = Mix(Luminosity, red, gray)
	if math.Abs(Lum(got)-0.5) > 1e-6 {
		t.Errorf("Lum(Mix(Luminosity, red, gray)) = %v, want 0.5", Lum(got))
	}

	// Color takes hue and saturation from the source, luminosity from the backdrop.
	got = Mix(Color, gray, red)
	if math.Abs(Lum(got)-0.5) > 1e-6 || got.R <= got.G {
		t.Errorf("Mix(Color, gray, red) = %v", got)
	}

	// Hue of a gray source applied to a gray backdrop is still gray.
	got = Mix(Hue, gray, gray)
	if !rgbNear(got, gray, 1e-9) {
		t.Errorf("Mix(Hue, gray, gray) = %v, want %v", got, gray)
	}
}
