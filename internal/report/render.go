package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rshade/coolroof/internal/chart"
	"github.com/rshade/coolroof/internal/greenops"
)

// Output formats accepted by Render.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
	FormatCSV    = "csv"
)

// barWidth is the width of the text bar charts in table output.
const barWidth = 40

// Render writes a single report in the given format.
func Render(w io.Writer, format string, r *Report) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatNDJSON:
		return json.NewEncoder(w).Encode(r)
	case FormatCSV:
		return WriteCSV(w, []*Report{r})
	case FormatTable, "":
		return renderTable(w, r)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// RenderMany writes several reports, e.g. the rows of a batch import.
func RenderMany(w io.Writer, format string, reports []*Report) error {
	switch format {
	case FormatJSON:
		response := struct {
			Results []*Report `json:"results"`
			Count   int       `json:"count"`
		}{Results: reports, Count: len(reports)}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	case FormatNDJSON:
		enc := json.NewEncoder(w)
		for _, r := range reports {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	case FormatCSV:
		return WriteCSV(w, reports)
	case FormatTable, "":
		return renderManyTable(w, reports)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func renderTable(w io.Writer, r *Report) error {
	c := r.Configuration
	m := r.Metrics

	fmt.Fprintln(w, "Cool Roof Coating Savings")
	fmt.Fprintln(w, "=========================")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintf(w, "  Area:             %s m²\n", greenops.FormatFloat(c.AreaM2, 0))
	fmt.Fprintf(w, "  Roof type:        %s\n", c.RoofType)
	fmt.Fprintf(w, "  Roof insulation:  %s (U=%.3f W/m²K)\n", c.RoofInsulation, m.Thermal.RoofU)
	fmt.Fprintf(w, "  Wall insulation:  %s (U=%.3f W/m²K)\n", c.WallInsulation, m.Thermal.WallU)
	fmt.Fprintf(w, "  EER:              %g\n", c.EER)
	fmt.Fprintf(w, "  Energy price:     %g %s/kWh\n", c.EnergyPrice, r.Currency)
	fmt.Fprintf(w, "  Emission factor:  %g kg CO2/kWh\n", c.EmissionFactor)
	fmt.Fprintf(w, "  Coating:          TSR %.2f, emissivity %.3f, SRI %d\n",
		r.Coating.SolarReflectance, r.Coating.Emissivity, r.Coating.SRI)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Annual Savings:")
	fmt.Fprintln(w, "---------------")
	fmt.Fprintf(w, "  Cooling reduction: %s Btu (%s GJ)\n",
		greenops.FormatFloat(m.TotalReductionBtu, 0), greenops.FormatFloat(m.ReductionGJ, 1))
	fmt.Fprintf(w, "  Energy:            %s kWh\n", greenops.FormatFloat(m.EnergyKWh, 0))
	fmt.Fprintf(w, "  Cost:              %s\n", greenops.FormatCurrency(m.CostSaved, r.Currency))
	fmt.Fprintf(w, "  CO2:               %s t\n", greenops.FormatFloat(m.CO2Tonnes, 2))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "20-Year Savings (axis max %s):\n", greenops.FormatFloat(r.Scales.Cumulative, 0))
	fmt.Fprintln(w, "------------------------------")
	fmt.Fprintf(w, "  kWh   %s %s\n", Bar(m.Series.FinalKWh(), r.Scales.Cumulative, barWidth),
		greenops.FormatFloat(m.Series.FinalKWh(), 0))
	fmt.Fprintf(w, "  %-5s %s %s\n", costUnit(r.Currency), Bar(m.Series.FinalCost(), r.Scales.Cumulative, barWidth),
		greenops.FormatFloat(m.Series.FinalCost(), 0))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Equivalents (per year):")
	fmt.Fprintln(w, "-----------------------")
	for _, res := range m.Equivalents.Results() {
		fmt.Fprintf(w, "  %-11s %s %s %s\n",
			res.Type, Bar(res.Value, r.Scales.Equivalence(res.Type), barWidth), res.FormattedValue, res.Label)
	}
	fmt.Fprintln(w)

	if r.Payback != nil {
		fmt.Fprintf(w, "Payback: %s (capex %s)\n", r.Payback, greenops.FormatCurrency(r.Payback.Capex, r.Currency))
	}

	return nil
}

func renderManyTable(w io.Writer, reports []*Report) error {
	if len(reports) == 0 {
		fmt.Fprintln(w, "No scenarios")
		return nil
	}

	fmt.Fprintln(w, "Cool Roof Coating Savings")
	fmt.Fprintln(w, "=========================")
	fmt.Fprintln(w)

	var totalKWh, totalCost, totalCO2 float64
	for _, r := range reports {
		totalKWh += r.Metrics.EnergyKWh
		totalCost += r.Metrics.CostSaved
		totalCO2 += r.Metrics.CO2Tonnes
	}
	currency := reports[0].Currency

	fmt.Fprintf(w, "Scenarios:        %d\n", len(reports))
	fmt.Fprintf(w, "Total energy:     %s kWh/yr\n", greenops.FormatFloat(totalKWh, 0))
	fmt.Fprintf(w, "Total cost:       %s/yr\n", greenops.FormatCurrency(totalCost, currency))
	fmt.Fprintf(w, "Total CO2:        %s t/yr\n", greenops.FormatFloat(totalCO2, 2))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Scenario Details:")
	fmt.Fprintln(w, "-----------------")
	for i, r := range reports {
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		c := r.Configuration
		fmt.Fprintf(w, "  %s: %s m² %s roof=%s wall=%s EER=%g\n",
			name, greenops.FormatFloat(c.AreaM2, 0), c.RoofType, c.RoofInsulation, c.WallInsulation, c.EER)
		fmt.Fprintf(w, "    %s kWh/yr, %s/yr, %s t CO2/yr",
			greenops.FormatFloat(r.Metrics.EnergyKWh, 0),
			greenops.FormatCurrency(r.Metrics.CostSaved, r.Currency),
			greenops.FormatFloat(r.Metrics.CO2Tonnes, 2))
		if r.Payback != nil {
			fmt.Fprintf(w, ", payback %s", r.Payback)
		}
		fmt.Fprintln(w)
	}

	return nil
}

func costUnit(currency string) string {
	if currency == "" {
		return "cost"
	}
	return currency
}

// Bar draws v on a 0..upper axis as a fixed-width text bar.
func Bar(v, upper float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(chart.Fraction(v, upper)*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
