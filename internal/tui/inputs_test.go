package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/coolroof/internal/calculator"
)

func TestInputs_Configuration(t *testing.T) {
	in := DefaultInputs()
	assert.Equal(t, calculator.DefaultConfiguration(), in.Configuration())

	in.EERBand = calculator.EERBandHigh
	assert.InDelta(t, 13.0, in.Configuration().EER, 1e-9)

	in.CustomEER = 15
	assert.InDelta(t, 15.0, in.Configuration().EER, 1e-9)
}

func TestInputs_Cycle(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		delta int
		check func(t *testing.T, in Inputs)
	}{
		{"wall insulation forward", FieldWallInsulation, 1, func(t *testing.T, in Inputs) {
			assert.Equal(t, "xps-50", in.WallInsulation.String())
		}},
		{"wall insulation wraps back", FieldWallInsulation, -1, func(t *testing.T, in Inputs) {
			assert.Equal(t, "pu-80", in.WallInsulation.String())
		}},
		{"eer band", FieldEERBand, 1, func(t *testing.T, in Inputs) {
			assert.Equal(t, calculator.EERBandHigh, in.EERBand)
		}},
		{"area step", FieldArea, 1, func(t *testing.T, in Inputs) {
			assert.InDelta(t, 1050.0, in.AreaM2, 1e-9)
		}},
		{"price step", FieldEnergyPrice, -1, func(t *testing.T, in Inputs) {
			assert.InDelta(t, 0.80, in.EnergyPrice, 1e-9)
		}},
		{"custom eer never below zero", FieldCustomEER, -1, func(t *testing.T, in Inputs) {
			assert.Zero(t, in.CustomEER)
		}},
		{"auto scale toggles", FieldAutoScale, 1, func(t *testing.T, in Inputs) {
			assert.False(t, in.AutoScale)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := DefaultInputs()
			in.Cycle(tt.field, tt.delta)
			tt.check(t, in)
		})
	}
}

func TestInputs_CycleFromCustomThickness(t *testing.T) {
	in := DefaultInputs()
	in.RoofInsulation = calculator.Layer(calculator.MaterialPolystyreneFoam, 123)

	in.Cycle(FieldRoofInsulation, 1)
	assert.True(t, in.RoofInsulation.IsNone(), "unknown value moves to the first preset")
}

func TestInputs_Set(t *testing.T) {
	in := DefaultInputs()

	require.NoError(t, in.Set(FieldEmissionFactor, "0.5"))
	assert.InDelta(t, 0.5, in.EmissionFactor, 1e-9)

	require.Error(t, in.Set(FieldEmissionFactor, "abc"))
	require.Error(t, in.Set(FieldRoofType, "1"))
}

func TestInputs_Value(t *testing.T) {
	in := DefaultInputs()
	assert.Equal(t, "1000", in.Value(FieldArea))
	assert.Equal(t, "metal", in.Value(FieldRoofType))
	assert.Equal(t, "standard (EER 11)", in.Value(FieldEERBand))
	assert.Equal(t, "off", in.Value(FieldCustomEER))
	assert.Equal(t, "on", in.Value(FieldAutoScale))
}
