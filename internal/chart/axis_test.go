package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNiceCeiling(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{name: "zero", x: 0, want: 0},
		{name: "negative", x: -5, want: 0},
		{name: "NaN", x: math.NaN(), want: 0},
		{name: "one", x: 1, want: 1},
		{name: "120 to 200", x: 120, want: 200},
		{name: "4500 to 5000", x: 4500, want: 5000},
		{name: "exact power of ten", x: 1000, want: 1000},
		{name: "just above power of ten", x: 1001, want: 2000},
		{name: "exactly two", x: 2, want: 2},
		{name: "above five", x: 5.1, want: 10},
		{name: "fraction", x: 0.03, want: 0.05},
		{name: "cumulative reference", x: 5707.8 * 20 * 1.25, want: 200_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NiceCeiling(tt.x), tt.want*1e-12)
		})
	}
}

func TestNiceCeiling_NeverBelowInput(t *testing.T) {
	for x := 0.37; x < 1e7; x *= 1.37 {
		got := NiceCeiling(x)
		assert.GreaterOrEqual(t, got, x*(1-1e-12), "x=%v", x)
		assert.LessOrEqual(t, got, x*10, "x=%v", x)
	}
}

func TestAxis_Max(t *testing.T) {
	tests := []struct {
		name string
		axis Axis
		peak float64
		want float64
	}{
		{name: "cumulative auto", axis: CumulativeAxis(true, 150_000), peak: 114_156, want: 200_000},
		{name: "cumulative fixed override", axis: CumulativeAxis(false, 150_000), peak: 114_156, want: 150_000},
		{name: "equivalence auto", axis: EquivalenceAxis(true, 300), peak: 199.77, want: 500},
		{name: "equivalence override above data", axis: EquivalenceAxis(false, 700), peak: 199.77, want: 1000},
		{name: "equivalence override below data", axis: EquivalenceAxis(false, 10), peak: 199.77, want: 500},
		{name: "zero peak auto", axis: EquivalenceAxis(true, 0), peak: 0, want: 0},
		{name: "missing headroom", axis: Axis{AutoScale: true}, peak: 120, want: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.axis.Max(tt.peak), 1e-9)
		})
	}
}

func TestTicks(t *testing.T) {
	assert.Equal(t, []float64{0, 50, 100, 150, 200}, Ticks(200, 4))
	assert.Equal(t, []float64{0}, Ticks(0, 4))
	assert.Equal(t, []float64{0}, Ticks(100, 0))
}

func TestFraction(t *testing.T) {
	assert.InDelta(t, 0.5, Fraction(50, 100), 1e-12)
	assert.InDelta(t, 1.0, Fraction(150, 100), 1e-12)
	assert.Zero(t, Fraction(-1, 100))
	assert.Zero(t, Fraction(10, 0))
}
