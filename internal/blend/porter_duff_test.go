package blend

import (
	"math"
	"testing"
)

func TestSourceOver(t *testing.T) {
	tests := []struct {
		name  string
		cs    RGB
		as    float64
		cb    RGB
		ab    float64
		want  RGB
		wantA float64
	}{
		{
			name: "opaque source replaces backdrop",
			cs:   RGB{R: 1}, as: 1,
			cb: RGB{B: 1}, ab: 1,
			want: RGB{R: 1}, wantA: 1,
		},
		{
			name: "transparent source keeps backdrop",
			cs:   RGB{R: 1}, as: 0,
			cb: RGB{B: 1}, ab: 0.5,
			want: RGB{B: 1}, wantA: 0.5,
		},
		{
			name: "half red over opaque blue",
			cs:   RGB{R: 1}, as: 0.5,
			cb: RGB{B: 1}, ab: 1,
			want: RGB{R: 0.5, B: 0.5}, wantA: 1,
		},
		{
			name: "half red over half blue",
			cs:   RGB{R: 1}, as: 0.5,
			cb: RGB{B: 1}, ab: 0.5,
			want: RGB{R: 0.5 / 0.75, B: 0.25 / 0.75}, wantA: 0.75,
		},
		{
			name: "half red over nothing",
			cs:   RGB{R: 1}, as: 0.5,
			cb: RGB{}, ab: 0,
			want: RGB{R: 1}, wantA: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotA := SourceOver(tt.cs, tt.as, tt.cb, tt.ab)
			if !rgbNear(got, tt.want, epsilon) || math.Abs(gotA-tt.wantA) > epsilon {
				t.Errorf("SourceOver() = %v, %v, want %v, %v", got, gotA, tt.want, tt.wantA)
			}
		})
	}
}
