// Package chart provides axis scaling for the savings charts.
package chart

import "math"

// Headroom factors applied before rounding an axis bound.
const (
	// CumulativeHeadroom is applied to the 20-year cumulative chart.
	CumulativeHeadroom = 1.25
	// EquivalenceHeadroom is applied to the equivalence bar charts.
	EquivalenceHeadroom = 1.5
)

// niceSteps are the mantissas an axis bound may take.
//
//nolint:gochecknoglobals // Fixed lookup table.
var niceSteps = []float64{1, 2, 5, 10}

// NiceCeiling rounds x up to the nearest value of the form {1,2,5,10}×10^n.
// It returns 0 for x <= 0 (and NaN).
func NiceCeiling(x float64) float64 {
	if !(x > 0) || math.IsInf(x, 0) {
		return 0
	}
	exp := math.Floor(math.Log10(x))
	scale := math.Pow(10, exp)
	base := x / scale

	for _, step := range niceSteps {
		if base <= step {
			return step * scale
		}
	}
	return niceSteps[len(niceSteps)-1] * scale
}

// Mode selects how an axis override is combined with the data.
type Mode int

const (
	// ModeFixed uses the override verbatim when auto-scaling is off.
	ModeFixed Mode = iota
	// ModeAtLeast rounds max(scaled value, override) when auto-scaling is off.
	ModeAtLeast
)

// Axis describes how the upper bound of one chart axis is chosen.
type Axis struct {
	Headroom  float64
	AutoScale bool
	Override  float64
	Mode      Mode
}

// CumulativeAxis returns the axis of the 20-year cumulative chart.
func CumulativeAxis(autoScale bool, override float64) Axis {
	return Axis{Headroom: CumulativeHeadroom, AutoScale: autoScale, Override: override, Mode: ModeFixed}
}

// EquivalenceAxis returns the axis of an equivalence bar chart.
func EquivalenceAxis(autoScale bool, override float64) Axis {
	return Axis{Headroom: EquivalenceHeadroom, AutoScale: autoScale, Override: override, Mode: ModeAtLeast}
}

// Max returns the axis upper bound for the largest plotted value.
func (a Axis) Max(peak float64) float64 {
	headroom := a.Headroom
	if headroom <= 0 {
		headroom = 1
	}
	scaled := peak * headroom

	if a.AutoScale {
		return NiceCeiling(scaled)
	}
	switch a.Mode {
	case ModeAtLeast:
		return NiceCeiling(max(scaled, a.Override))
	default:
		return a.Override
	}
}

// Ticks returns n+1 evenly spaced values from 0 to upper inclusive.
func Ticks(upper float64, n int) []float64 {
	if n <= 0 || !(upper > 0) {
		return []float64{0}
	}
	ticks := make([]float64, n+1)
	step := upper / float64(n)
	for i := range ticks {
		ticks[i] = step * float64(i)
	}
	ticks[n] = upper
	return ticks
}

// Fraction returns v's position on a 0..upper axis, clamped to [0, 1].
func Fraction(v, upper float64) float64 {
	if !(upper > 0) || !(v > 0) {
		return 0
	}
	return math.Min(v/upper, 1)
}
