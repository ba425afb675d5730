package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/coolroof/internal/calculator"
	"github.com/rshade/coolroof/internal/report"
)

func newTestModel(t *testing.T) *CalculatorModel {
	t.Helper()
	return NewCalculatorModel(context.Background(), DefaultInputs(), Options{
		Currency: "PLN",
		Charts:   report.DefaultChartSettings(),
	})
}

func press(m *CalculatorModel, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func typeRunes(m *CalculatorModel, s string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return cmd
}

func TestNewCalculatorModel(t *testing.T) {
	m := newTestModel(t)

	require.NotNil(t, m.Report())
	require.NoError(t, m.Err())
	assert.Equal(t, CalculatorStateEditing, m.state)
	assert.Equal(t, FieldArea, m.focused)
	assert.InDelta(t, 5707.8, m.Report().Metrics.EnergyKWh, 0.1)
	require.NotNil(t, m.Report().Payback)
	assert.True(t, m.Report().Payback.Defined)
	assert.Nil(t, m.Init())
}

func TestCalculatorModel_Navigation(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyUp)
	assert.Equal(t, FieldArea, m.focused, "cannot move above the first field")

	for range int(fieldCount) + 3 {
		press(m, tea.KeyDown)
	}
	assert.Equal(t, FieldAutoScale, m.focused, "cannot move below the last field")

	typeRunes(m, "k")
	assert.Equal(t, FieldUnitCost, m.focused)
}

func TestCalculatorModel_CycleRoofType(t *testing.T) {
	m := newTestModel(t)
	press(m, tea.KeyDown)
	require.Equal(t, FieldRoofType, m.focused)

	press(m, tea.KeyRight)
	assert.Equal(t, calculator.RoofTypeConcrete, m.Inputs().RoofType)
	require.NotNil(t, m.Report())
	assert.InDelta(t, 0.64, m.Report().Metrics.Thermal.RoofTotal, 1e-9)

	press(m, tea.KeyLeft)
	press(m, tea.KeyLeft)
	assert.Equal(t, calculator.RoofTypeBitumen, m.Inputs().RoofType, "left from metal wraps around")
}

func TestCalculatorModel_EditArea(t *testing.T) {
	m := newTestModel(t)
	before := m.Report().Metrics.EnergyKWh

	press(m, tea.KeyEnter)
	require.True(t, m.editMode)
	assert.Equal(t, "1000", m.input.Value())

	m.input.SetValue("2000")
	press(m, tea.KeyEnter)

	assert.False(t, m.editMode)
	assert.InDelta(t, 2000.0, m.Inputs().AreaM2, 1e-9)
	assert.InDelta(t, 2*before, m.Report().Metrics.EnergyKWh, 1e-6)
}

func TestCalculatorModel_EditInvalidNumber(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyEnter)
	m.input.SetValue("lots")
	press(m, tea.KeyEnter)

	assert.True(t, m.editMode, "stays in edit mode")
	require.Error(t, m.inputErr)
	assert.InDelta(t, 1000.0, m.Inputs().AreaM2, 1e-9)

	press(m, tea.KeyEsc)
	assert.False(t, m.editMode)
	assert.NoError(t, m.inputErr)
}

func TestCalculatorModel_InvalidConfigurationClearsReport(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyEnter)
	m.input.SetValue("-5")
	press(m, tea.KeyEnter)

	assert.Nil(t, m.Report())
	require.ErrorIs(t, m.Err(), calculator.ErrNegativeArea)
	assert.Contains(t, m.View(), "Invalid configuration")
	assert.NotContains(t, m.View(), "ANNUAL SAVINGS")

	press(m, tea.KeyEnter)
	m.input.SetValue("10")
	press(m, tea.KeyEnter)
	require.NoError(t, m.Err())
	assert.NotNil(t, m.Report())
}

func TestCalculatorModel_CustomEER(t *testing.T) {
	m := newTestModel(t)
	m.focused = FieldCustomEER

	press(m, tea.KeyEnter)
	assert.Empty(t, m.input.Value(), "custom EER starts empty when off")
	m.input.SetValue("22")
	press(m, tea.KeyEnter)

	assert.InDelta(t, 22.0, m.Report().Configuration.EER, 1e-9)
	assert.InDelta(t, 2853.9, m.Report().Metrics.EnergyKWh, 0.1)

	press(m, tea.KeyEnter)
	m.input.SetValue("")
	press(m, tea.KeyEnter)
	assert.InDelta(t, 11.0, m.Report().Configuration.EER, 1e-9, "empty input turns the override off")
}

func TestCalculatorModel_ZeroPriceShowsUndefinedPayback(t *testing.T) {
	m := newTestModel(t)
	m.focused = FieldEnergyPrice

	press(m, tea.KeyEnter)
	m.input.SetValue("0")
	press(m, tea.KeyEnter)

	require.NotNil(t, m.Report())
	require.NotNil(t, m.Report().Payback)
	assert.False(t, m.Report().Payback.Defined)
	assert.Contains(t, m.View(), "Payback: undefined")
}

func TestCalculatorModel_AutoScaleToggle(t *testing.T) {
	m := newTestModel(t)
	assert.InDelta(t, 200_000, m.Report().Scales.Cumulative, 1e-9)

	typeRunes(m, "a")
	assert.False(t, m.Inputs().AutoScale)
	assert.InDelta(t, 150_000, m.Report().Scales.Cumulative, 1e-9)
}

func TestCalculatorModel_Export(t *testing.T) {
	t.Run("calls export func", func(t *testing.T) {
		var exported *report.Report
		m := NewCalculatorModel(context.Background(), DefaultInputs(), Options{
			Export: func(_ context.Context, r *report.Report) (string, error) {
				exported = r
				return "/tmp/out.csv", nil
			},
		})

		typeRunes(m, "x")
		require.NotNil(t, exported)
		assert.Equal(t, "exported to /tmp/out.csv", m.status)
	})

	t.Run("reports export failure", func(t *testing.T) {
		m := NewCalculatorModel(context.Background(), DefaultInputs(), Options{
			Export: func(context.Context, *report.Report) (string, error) {
				return "", errors.New("disk full")
			},
		})
		typeRunes(m, "x")
		assert.Equal(t, "export failed: disk full", m.status)
	})

	t.Run("without export func", func(t *testing.T) {
		m := newTestModel(t)
		typeRunes(m, "x")
		assert.Equal(t, "export is not available", m.status)
	})
}

func TestCalculatorModel_RecalculateCallback(t *testing.T) {
	calls := 0
	m := NewCalculatorModel(context.Background(), DefaultInputs(), Options{
		Recalculate: func(_ context.Context, cfg calculator.Configuration, opts report.Options) (*report.Report, error) {
			calls++
			return report.New(cfg, opts)
		},
	})
	assert.Equal(t, 1, calls)

	m.focused = FieldRoofInsulation
	press(m, tea.KeyRight)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "xps-50", m.Inputs().RoofInsulation.String())
}

func TestCalculatorModel_Quit(t *testing.T) {
	m := newTestModel(t)
	cmd := typeRunes(m, "q")

	require.NotNil(t, cmd)
	assert.Equal(t, CalculatorStateQuitting, m.state)
	assert.Empty(t, m.View())
}

func TestCalculatorModel_WindowSize(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 50, m.height)
}

func TestCalculatorModel_View(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	for _, want := range []string{
		"Cool Roof Coating Savings",
		"CONFIGURATION",
		"Roof area (m²)",
		"THERMAL",
		"ANNUAL SAVINGS",
		"5,708 kWh",
		"20-YEAR CUMULATIVE SAVINGS",
		"EQUIVALENT IMPACT",
		"Payback: 10.3 years",
	} {
		assert.Contains(t, view, want)
	}
}
