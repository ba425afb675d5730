package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/coolroof/internal/calculator"
)

func TestRenderPayback(t *testing.T) {
	t.Run("defined", func(t *testing.T) {
		out := RenderPayback(calculator.Payback{Capex: 50_000, AnnualCost: 4851.6, Years: 10.31, Defined: true}, "PLN")
		assert.Contains(t, out, "Payback: 10.3 years")
		assert.Contains(t, out, "capex 50,000 PLN")
	})

	t.Run("undefined", func(t *testing.T) {
		out := RenderPayback(calculator.Payback{Capex: 50_000}, "PLN")
		assert.Contains(t, out, "Payback: undefined")
	})
}

func TestRenderThermalTable(t *testing.T) {
	out := RenderThermalTable(calculator.ThermalResistance{
		RoofTotal: 0.31, WallTotal: 0.59, RoofU: 1 / 0.31, WallU: 1 / 0.59,
	})
	assert.Contains(t, out, "THERMAL")
	assert.Contains(t, out, "0.310")
	assert.Contains(t, out, "3.226")
}

func TestRenderConfigError(t *testing.T) {
	out := RenderConfigError(errors.New("EER must be positive: 0"))
	assert.Contains(t, out, "Invalid configuration: EER must be positive: 0")
}

func TestTickLabel(t *testing.T) {
	assert.Equal(t, "0", tickLabel(0))
	assert.Equal(t, "50,000", tickLabel(50_000))
	assert.Equal(t, "1.25", tickLabel(1.25))
	assert.Equal(t, "~2.0 million", tickLabel(2_000_000))
}

func TestAxisLabel(t *testing.T) {
	assert.Equal(t, "axis 0 | 50,000 | 100,000 | 150,000 | 200,000", axisLabel(200_000))
}
