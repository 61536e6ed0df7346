package tint

import "testing"

func TestWeightedMixEndpoints(t *testing.T) {
	pairs := [][2]Color{
		{Red, Blue},
		{RGBA(0.2, 0.4, 0.6, 0.3), RGBA(0.9, 0.1, 0.5, 1)},
		{RGBA(1, 1, 1, 1), RGBA(0, 0, 0, 0)},
		{Transparent, White},
	}

	for _, p := range pairs {
		a, b := p[0], p[1]
		if got := WeightedMix(a, b, 1); !got.ApproxEqual(a, 1e-12) {
			t.Errorf("WeightedMix(%v, %v, 1) = %v, want %v", a, b, got, a)
		}
		if got := WeightedMix(a, b, 0); !got.ApproxEqual(b, 1e-12) {
			t.Errorf("WeightedMix(%v, %v, 0) = %v, want %v", a, b, got, b)
		}
		if got, want := WeightedMix(a, b, 0.5), Mix(a, b); got != want {
			t.Errorf("WeightedMix(%v, %v, 0.5) = %v, Mix = %v", a, b, got, want)
		}
	}
}

func TestMix(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		want Color
	}{
		{"red and blue", Red, Blue, RGB(0.5, 0, 0.5)},
		{"black and white", Black, White, RGB(0.5, 0.5, 0.5)},
		{"same color", RGB(0.3, 0.6, 0.9), RGB(0.3, 0.6, 0.9), RGB(0.3, 0.6, 0.9)},
		// Opaque red outweighs transparent blue: channels come from red only.
		{"opaque and transparent", Red, RGBA(0, 0, 1, 0), RGBA(1, 0, 0, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mix(tt.a, tt.b); !got.ApproxEqual(tt.want, 1e-12) {
				t.Errorf("Mix(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestWeightedMixClampsWeight(t *testing.T) {
	if got := WeightedMix(Red, Blue, 2); got != WeightedMix(Red, Blue, 1) {
		t.Errorf("WeightedMix(weight 2) = %v, want red", got)
	}
	if got := WeightedMix(Red, Blue, -1); got != WeightedMix(Red, Blue, 0) {
		t.Errorf("WeightedMix(weight -1) = %v, want blue", got)
	}
}

func TestWeightedMixQuarter(t *testing.T) {
	got := WeightedMix(White, Black, 0.25)
	if !got.ApproxEqual(RGB(0.25, 0.25, 0.25), 1e-12) {
		t.Errorf("WeightedMix(white, black, 0.25) = %v", got)
	}
}
