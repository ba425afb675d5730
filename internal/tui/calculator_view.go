package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/coolroof/internal/calculator"
	"github.com/rshade/coolroof/internal/chart"
	"github.com/rshade/coolroof/internal/greenops"
	"github.com/rshade/coolroof/internal/report"
)

// Layout constants.
const (
	fieldLabelWidth = 20
	chartBarWidth   = 36
	chartLabelWidth = 8
	borderPadding   = 4
	axisTicks       = 4
)

// cumulativeYears are the years plotted on the cumulative chart.
//
//nolint:gochecknoglobals // Fixed chart rows.
var cumulativeYears = []int{1, 5, 10, 15, 20}

func (m *CalculatorModel) renderCalculatorView() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("Cool Roof Coating Savings"))
	sb.WriteString("\n")
	sb.WriteString(SubtleStyle.Render(fmt.Sprintf("Coating: TSR %.2f, emissivity %.3f, SRI %d",
		calculator.CoatingSolarReflectance, calculator.CoatingEmissivity, calculator.CoatingSRI)))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderInputs())
	sb.WriteString("\n")

	switch {
	case m.err != nil:
		sb.WriteString(RenderConfigError(m.err))
		sb.WriteString("\n")
	case m.report != nil:
		sb.WriteString(RenderResults(m.report, m.width))
	}

	if m.status != "" {
		sb.WriteString("\n")
		sb.WriteString(OKStyle.Render(m.status))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m *CalculatorModel) renderInputs() string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("CONFIGURATION"))
	sb.WriteString("\n")

	for f := range fieldCount {
		focused := f == m.focused
		prefix := "  "
		if focused {
			prefix = IconFocus + " "
			if m.editMode {
				prefix = IconEdit + " "
			}
		}

		label := fmt.Sprintf("%-*s", fieldLabelWidth, f.Label())
		value := m.inputs.Value(f)
		switch f {
		case FieldEnergyPrice:
			value += " " + m.currency + "/kWh"
		case FieldEmissionFactor:
			value += " kg CO2/kWh"
		case FieldUnitCost:
			value += " " + m.currency
		}

		sb.WriteString(prefix)
		if focused {
			sb.WriteString(FocusStyle.Render(label))
		} else {
			sb.WriteString(LabelStyle.Render(label))
		}
		if focused && m.editMode {
			sb.WriteString(m.input.View())
		} else {
			sb.WriteString(ValueStyle.Render(value))
		}
		if focused && m.inputErr != nil {
			sb.WriteString("  ")
			sb.WriteString(CriticalStyle.Render(m.inputErr.Error()))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderConfigError renders a rejected configuration.
func RenderConfigError(err error) string {
	return CriticalStyle.Render(fmt.Sprintf("%s Invalid configuration: %v", IconWarning, err))
}

// RenderResults renders the thermal table, KPIs, charts and payback of a report.
func RenderResults(r *report.Report, width int) string {
	var sb strings.Builder
	sb.WriteString(RenderThermalTable(r.Metrics.Thermal))
	sb.WriteString("\n")
	sb.WriteString(RenderKPIs(r, width))
	sb.WriteString("\n")
	sb.WriteString(RenderCumulativeChart(r))
	sb.WriteString("\n")
	sb.WriteString(RenderEquivalenceCharts(r))
	if r.Payback != nil {
		sb.WriteString("\n")
		sb.WriteString(RenderPayback(*r.Payback, r.Currency))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderThermalTable renders R and U values of roof and wall.
func RenderThermalTable(t calculator.ThermalResistance) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("THERMAL"))
	sb.WriteString("\n")
	sb.WriteString(LabelStyle.Render(fmt.Sprintf("  %-8s %12s %12s %12s\n", "", "layer R", "total R", "U (W/m²K)")))
	sb.WriteString(fmt.Sprintf("  %-8s %12.3f %12.3f %12.3f\n", "Roof", t.RoofLayer, t.RoofTotal, t.RoofU))
	sb.WriteString(fmt.Sprintf("  %-8s %12.3f %12.3f %12.3f\n", "Wall", t.WallLayer, t.WallTotal, t.WallU))
	return sb.String()
}

// RenderKPIs renders the annual savings summary box.
func RenderKPIs(r *report.Report, width int) string {
	m := r.Metrics
	var content strings.Builder
	content.WriteString(HeaderStyle.Render("ANNUAL SAVINGS"))
	content.WriteString("\n")

	kpi := func(label, value string) {
		content.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", fieldLabelWidth, label)))
		content.WriteString(ValueStyle.Render(value))
		content.WriteString("\n")
	}
	kpi("Cooling reduction", fmt.Sprintf("%s GJ", greenops.FormatFloat(m.ReductionGJ, 1)))
	kpi("Electricity", greenops.FormatFloat(m.EnergyKWh, 0)+" kWh")
	kpi("Cost", greenops.FormatCurrency(m.CostSaved, r.Currency))
	kpi("CO2", greenops.FormatFloat(m.CO2Tonnes, 2)+" t")
	content.WriteString(SubtleStyle.Render(m.Equivalents.DisplayText()))

	if width <= borderPadding {
		width = calculatorDefaultWidth
	}
	return BoxStyle.Width(width - borderPadding).Render(content.String())
}

// RenderCumulativeChart renders cumulative kWh and cost for selected years.
func RenderCumulativeChart(r *report.Report) string {
	s := r.Metrics.Series
	upper := r.Scales.Cumulative

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("20-YEAR CUMULATIVE SAVINGS"))
	sb.WriteString("  ")
	sb.WriteString(SubtleStyle.Render(axisLabel(upper)))
	sb.WriteString("\n")

	energy := lipgloss.NewStyle().Foreground(ColorEnergy)
	cost := lipgloss.NewStyle().Foreground(ColorCost)
	for _, year := range cumulativeYears {
		i := year - 1
		if i >= s.Len() {
			continue
		}
		sb.WriteString(fmt.Sprintf("  yr %2d kWh  ", year))
		sb.WriteString(energy.Render(report.Bar(s.CumulativeKWh[i], upper, chartBarWidth)))
		sb.WriteString(" " + greenops.FormatFloat(s.CumulativeKWh[i], 0) + "\n")
		sb.WriteString(fmt.Sprintf("        %-4s ", costLabel(r.Currency)))
		sb.WriteString(cost.Render(report.Bar(s.CumulativeCost[i], upper, chartBarWidth)))
		sb.WriteString(" " + greenops.FormatFloat(s.CumulativeCost[i], 0) + "\n")
	}
	return sb.String()
}

// RenderEquivalenceCharts renders one bar per equivalent on its own axis.
func RenderEquivalenceCharts(r *report.Report) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("EQUIVALENT IMPACT (PER YEAR)"))
	sb.WriteString("\n")

	bar := lipgloss.NewStyle().Foreground(ColorImpact)
	for _, res := range r.Metrics.Equivalents.Results() {
		upper := r.Scales.Equivalence(res.Type)
		sb.WriteString(LabelStyle.Render(fmt.Sprintf("  %-*s ", chartLabelWidth+3, res.Type)))
		sb.WriteString(bar.Render(report.Bar(res.Value, upper, chartBarWidth)))
		sb.WriteString(" ")
		sb.WriteString(ValueStyle.Render(res.FormattedValue))
		sb.WriteString(" ")
		sb.WriteString(SubtleStyle.Render(res.Label + " · " + axisLabel(upper)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderPayback renders the payback line.
func RenderPayback(p calculator.Payback, currency string) string {
	capex := greenops.FormatCurrency(p.Capex, currency)
	if !p.Defined {
		return WarningStyle.Render(fmt.Sprintf("Payback: undefined (no annual savings; capex %s)", capex))
	}
	return OKStyle.Render(fmt.Sprintf("Payback: %s", p)) +
		LabelStyle.Render(fmt.Sprintf(" (capex %s)", capex))
}

func axisLabel(upper float64) string {
	ticks := chart.Ticks(upper, axisTicks)
	parts := make([]string, len(ticks))
	for i, t := range ticks {
		parts[i] = tickLabel(t)
	}
	return "axis " + strings.Join(parts, " | ")
}

func tickLabel(t float64) string {
	switch {
	case t >= greenops.LargeNumberThreshold:
		return greenops.FormatLarge(t)
	case t == math.Trunc(t):
		return greenops.FormatFloat(t, 0)
	default:
		return greenops.FormatFloat(t, 2)
	}
}

func costLabel(currency string) string {
	if currency == "" {
		return "cost"
	}
	return currency
}
