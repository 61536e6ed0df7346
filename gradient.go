package tint

import (
	"math"
	"sort"
)

// ExtendMode defines how a gradient extends beyond its [0, 1] range.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// Stop is a color at a specific position of a gradient.
type Stop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  Color   // Color at this position
}

// Gradient is a multi-stop color ramp over [0, 1].
//
// Example:
//
//	g := tint.NewGradient(tint.SpaceRGB).
//	    AddStop(0, tint.Red).
//	    AddStop(0.5, tint.Yellow).
//	    AddStop(1, tint.Blue)
//	palette := g.Colors(9)
type Gradient struct {
	Stops  []Stop     // Color stops, in any order
	Space  Space      // Interpolation space between stops
	Extend ExtendMode // How At treats positions outside [0, 1]
}

// NewGradient creates an empty gradient interpolating in space.
func NewGradient(space Space) *Gradient {
	return &Gradient{Space: space, Extend: ExtendPad}
}

// AddStop adds a color stop at the specified offset.
// Returns the gradient for method chaining.
func (g *Gradient) AddStop(offset float64, c Color) *Gradient {
	g.Stops = append(g.Stops, Stop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode for the gradient.
// Returns the gradient for method chaining.
func (g *Gradient) SetExtend(mode ExtendMode) *Gradient {
	g.Extend = mode
	return g
}

// At returns the gradient color at position t.
//
// The two stops straddling t are interpolated with the local parameter
// (t - a.Offset) / (b.Offset - a.Offset). A position equal to a stop
// offset returns that stop's color unchanged. Without stops the result
// is Transparent.
func (g *Gradient) At(t float64) Color {
	return colorAtOffset(g.Space, sortStops(g.Stops), applyExtendMode(t, g.Extend))
}

// Colors samples the gradient at steps evenly spaced positions
// 0, 1/(steps-1), ..., 1. It returns nil when steps <= 0 or there are no
// stops; a single step yields the color at position 0.
func (g *Gradient) Colors(steps int) []Color {
	if steps <= 0 || len(g.Stops) == 0 {
		logEmptyGradient(steps, len(g.Stops))
		return nil
	}

	sorted := sortStops(g.Stops)
	out := make([]Color, steps)
	if steps == 1 {
		out[0] = colorAtOffset(g.Space, sorted, 0)
		return out
	}

	last := float64(steps - 1)
	for i := range out {
		out[i] = colorAtOffset(g.Space, sorted, float64(i)/last)
	}
	return out
}

// LinearGradient returns steps colors evenly spread over palette, whose
// colors act as stops at positions 0, 1/(n-1), ..., 1. Output positions
// that coincide with a palette position reproduce that color exactly.
func LinearGradient(space Space, palette []Color, steps int) []Color {
	g := NewGradient(space)
	switch n := len(palette); n {
	case 0:
	case 1:
		g.AddStop(0, palette[0])
	default:
		for i, c := range palette {
			g.AddStop(float64(i)/float64(n-1), c)
		}
	}
	return g.Colors(steps)
}

// LinearGradientFromStops returns steps evenly spaced colors from explicit,
// possibly irregularly positioned stops. Stops are sorted by offset first;
// the input slice is not modified.
func LinearGradientFromStops(space Space, stops []Stop, steps int) []Color {
	g := &Gradient{Stops: stops, Space: space}
	return g.Colors(steps)
}

// sortStops sorts color stops by offset, keeping the input order of stops
// with equal offsets.
func sortStops(stops []Stop) []Stop {
	if len(stops) == 0 {
		return stops
	}

	// Copy so the caller's slice keeps its order
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	return sorted
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
// Non-finite positions have no period, so every mode pads them: NaN and
// -Inf map to 0, +Inf maps to 1.
func applyExtendMode(t float64, mode ExtendMode) float64 {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return clamp01(t)
	}
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if math.Mod(period, 2) == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// colorAtOffset returns the interpolated color at offset t of sorted stops.
func colorAtOffset(space Space, sorted []Stop, t float64) Color {
	if len(sorted) == 0 {
		return Transparent
	}

	// Find the first stop at or after t
	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})

	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	stop2 := sorted[idx]
	if stop2.Offset == t {
		return stop2.Color
	}
	stop1 := sorted[idx-1]

	// stop1.Offset < t < stop2.Offset, so the span is never zero
	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)

	return Interpolate(space, stop1.Color, stop2.Color, localT)
}
