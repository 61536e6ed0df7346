package blend

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestChannelFormulas(t *testing.T) {
	tests := []struct {
		name   string
		mode   Mode
		cb, cs float64
		want   float64
	}{
		{"multiply white white", Multiply, 1, 1, 1},
		{"multiply black white", Multiply, 0, 1, 0},
		{"multiply half half", Multiply, 0.5, 0.5, 0.25},

		{"screen black black", Screen, 0, 0, 0},
		{"screen half half", Screen, 0.5, 0.5, 0.75},
		{"screen white any", Screen, 1, 0.3, 1},

		{"overlay dark backdrop", Overlay, 0.25, 0.5, 0.25},
		{"overlay light backdrop", Overlay, 0.75, 0.5, 0.75},
		{"overlay boundary uses screen branch", Overlay, 0.5, 0.2, 1 - 2*0.5*0.8},

		{"hardlight dark source", HardLight, 0.5, 0.25, 0.25},
		{"hardlight light source", HardLight, 0.5, 0.75, 0.75},

		{"softlight neutral source", SoftLight, 0.3, 0.5, 0.3},
		{"softlight dark backdrop", SoftLight, 0.25, 0.75, 0.34375},
		{"softlight light backdrop", SoftLight, 0.64, 0.25, 0.56},
		{"softlight boundary uses sqrt branch", SoftLight, 0.5, 0.25, 0.75 - 0.5*math.Sqrt(0.5)},

		{"difference", Difference, 0.2, 0.7, 0.5},
		{"difference reversed", Difference, 0.7, 0.2, 0.5},

		{"exclusion half half", Exclusion, 0.5, 0.5, 0.5},
		{"exclusion black white", Exclusion, 0, 1, 1},

		{"darken", Darken, 0.3, 0.6, 0.3},
		{"lighten", Lighten, 0.3, 0.6, 0.6},

		{"color dodge black backdrop", ColorDodge, 0, 1, 0},
		{"color dodge white source", ColorDodge, 0.4, 1, 1},
		{"color dodge", ColorDodge, 0.25, 0.5, 0.5},
		{"color burn white backdrop", ColorBurn, 1, 0, 1},
		{"color burn black source", ColorBurn, 0.4, 0, 0},
		{"color burn", ColorBurn, 0.75, 0.5, 0.5},

		{"normal", Normal, 0.1, 0.9, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Channel(tt.mode)(tt.cb, tt.cs)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("Channel(%v)(%v, %v) = %v, want %v", tt.mode, tt.cb, tt.cs, got, tt.want)
			}
		})
	}
}

// TestSoftLightNeutralSource checks that a mid-gray source leaves the
// backdrop unchanged in both branches.
func TestSoftLightNeutralSource(t *testing.T) {
	for i := 0; i <= 10; i++ {
		cb := float64(i) / 10
		if got := softLight(cb, 0.5); math.Abs(got-cb) > epsilon {
			t.Errorf("softLight(%v, 0.5) = %v, want %v", cb, got, cb)
		}
	}
}

// TestSeparableRange checks every separable mode stays inside [0,1].
func TestSeparableRange(t *testing.T) {
	for m := Normal; m < Hue; m++ {
		f := Channel(m)
		for i := 0; i <= 20; i++ {
			for j := 0; j <= 20; j++ {
				cb, cs := float64(i)/20, float64(j)/20
				got := f(cb, cs)
				if got < -epsilon || got > 1+epsilon {
					t.Errorf("mode %d: f(%v, %v) = %v out of range", m, cb, cs, got)
				}
			}
		}
	}
}

func TestModeSeparable(t *testing.T) {
	for m := Normal; m <= Exclusion; m++ {
		if !m.Separable() {
			t.Errorf("Mode(%d).Separable() = false, want true", m)
		}
	}
	for _, m := range []Mode{Hue, Saturation, Color, Luminosity} {
		if m.Separable() {
			t.Errorf("Mode(%d).Separable() = true, want false", m)
		}
	}
}

func TestCompositeOpaqueIsBareFormula(t *testing.T) {
	cb := RGB{R: 0.2, G: 0.6, B: 0.9}
	cs := RGB{R: 0.7, G: 0.1, B: 0.5}

	got, a := Composite(Multiply, cb, 1, cs, 1)
	want := RGB{R: 0.2 * 0.7, G: 0.6 * 0.1, B: 0.9 * 0.5}
	if a != 1 || !rgbNear(got, want, epsilon) {
		t.Errorf("Composite(Multiply) = %v, %v, want %v, 1", got, a, want)
	}
}

func TestCompositeTranslucent(t *testing.T) {
	cb := RGB{R: 1, G: 1, B: 1}
	cs := RGB{R: 0, G: 0, B: 0}

	// Transparent source leaves the backdrop untouched.
	got, a := Composite(Multiply, cb, 1, cs, 0)
	if a != 1 || !rgbNear(got, cb, epsilon) {
		t.Errorf("transparent source: got %v, %v", got, a)
	}

	// Half-transparent black multiplied over white gives mid gray.
	got, a = Composite(Multiply, cb, 1, cs, 0.5)
	if a != 1 || !rgbNear(got, RGB{R: 0.5, G: 0.5, B: 0.5}, epsilon) {
		t.Errorf("half source: got %v, %v", got, a)
	}

	// Over a transparent backdrop the source shows unblended.
	got, a = Composite(Multiply, RGB{R: 0.3, G: 0.3, B: 0.3}, 0, RGB{R: 0.8, G: 0.4, B: 0.2}, 0.6)
	if math.Abs(a-0.6) > epsilon || !rgbNear(got, RGB{R: 0.8, G: 0.4, B: 0.2}, epsilon) {
		t.Errorf("transparent backdrop: got %v, %v", got, a)
	}
}

func rgbNear(a, b RGB, eps float64) bool {
	return math.Abs(a.R-b.R) <= eps &&
		math.Abs(a.G-b.G) <= eps &&
		math.Abs(a.B-b.B) <= eps
}
