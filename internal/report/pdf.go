package report

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"github.com/rshade/coolroof/internal/chart"
	"github.com/rshade/coolroof/internal/greenops"
)

// Page geometry in millimetres (A4 portrait, 15 mm margins).
const (
	pdfMargin       = 15.0
	pdfContentWidth = 180.0
	pdfLabelWidth   = 60.0
	pdfRowHeight    = 6.0
	pdfChartHeight  = 60.0
	pdfTicks        = 5
	pdfBarHeight    = 7.0
)

type rgb struct{ r, g, b int }

//nolint:gochecknoglobals // Fixed palette.
var (
	colorKWh  = rgb{52, 120, 198}
	colorCost = rgb{46, 160, 67}
	colorGrid = rgb{200, 200, 200}
	colorText = rgb{40, 40, 40}
)

// WritePDF renders a one-page printable report.
func WritePDF(w io.Writer, r *Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetTitle("Cool roof coating savings", true)
	pdf.SetCreator("coolroof", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetTextColor(colorText.r, colorText.g, colorText.b)
	pdf.SetFont("Helvetica", "B", 16)
	title := "Cool Roof Coating Savings"
	if r.Name != "" {
		title += ": " + r.Name
	}
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Generated %s  |  Report %s", r.GeneratedAt.Format("2006-01-02 15:04 MST"), r.ID))
	pdf.Ln(9)

	c := r.Configuration
	m := r.Metrics
	section(pdf, "Configuration")
	rows := [][2]string{
		{"Roof area", greenops.FormatFloat(c.AreaM2, 0) + " m²"},
		{"Roof type", c.RoofType.String()},
		{"Roof insulation", fmt.Sprintf("%s (U = %.3f W/m²K)", c.RoofInsulation, m.Thermal.RoofU)},
		{"Wall insulation", fmt.Sprintf("%s (U = %.3f W/m²K)", c.WallInsulation, m.Thermal.WallU)},
		{"Air conditioning EER", fmt.Sprintf("%g", c.EER)},
		{"Energy price", fmt.Sprintf("%g %s/kWh", c.EnergyPrice, r.Currency)},
		{"Emission factor", fmt.Sprintf("%g kg CO2/kWh", c.EmissionFactor)},
		{"Coating", fmt.Sprintf("TSR %.2f, emissivity %.3f, SRI %d",
			r.Coating.SolarReflectance, r.Coating.Emissivity, r.Coating.SRI)},
	}
	keyValueRows(pdf, tr, rows)

	section(pdf, "Annual savings")
	kpis := [][2]string{
		{"Cooling load reduction", fmt.Sprintf("%s Btu (%s GJ)",
			greenops.FormatFloat(m.TotalReductionBtu, 0), greenops.FormatFloat(m.ReductionGJ, 1))},
		{"Electricity", greenops.FormatFloat(m.EnergyKWh, 0) + " kWh"},
		{"Cost", greenops.FormatCurrency(m.CostSaved, r.Currency)},
		{"CO2", greenops.FormatFloat(m.CO2Tonnes, 2) + " t"},
		{"20-year electricity", greenops.FormatFloat(m.Series.FinalKWh(), 0) + " kWh"},
		{"20-year cost", greenops.FormatCurrency(m.Series.FinalCost(), r.Currency)},
	}
	if r.Payback != nil {
		kpis = append(kpis, [2]string{"Payback", fmt.Sprintf("%s (capex %s)",
			r.Payback, greenops.FormatCurrency(r.Payback.Capex, r.Currency))})
	}
	keyValueRows(pdf, tr, kpis)

	section(pdf, "20-year cumulative savings")
	cumulativeChart(pdf, r)

	section(pdf, "Equivalents per year")
	equivalenceBars(pdf, tr, r)

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)
}

func keyValueRows(pdf *gofpdf.Fpdf, tr func(string) string, rows [][2]string) {
	for _, row := range rows {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(pdfLabelWidth, pdfRowHeight, tr(row[0]), "B", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(pdfContentWidth-pdfLabelWidth, pdfRowHeight, tr(row[1]), "B", 1, "L", false, 0, "")
	}
}

// cumulativeChart plots cumulative kWh and cost against the year.
func cumulativeChart(pdf *gofpdf.Fpdf, r *Report) {
	s := r.Metrics.Series
	upper := r.Scales.Cumulative
	x0 := pdfMargin + 20
	y0 := pdf.GetY()
	width := pdfContentWidth - 25
	bottom := y0 + pdfChartHeight

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetLineWidth(0.1)
	pdf.SetDrawColor(colorGrid.r, colorGrid.g, colorGrid.b)
	for _, t := range chart.Ticks(upper, pdfTicks) {
		y := bottom - chart.Fraction(t, upper)*pdfChartHeight
		pdf.Line(x0, y, x0+width, y)
		pdf.Text(pdfMargin, y+1, greenops.FormatFloat(t, 0))
	}

	n := s.Len()
	if n > 0 && upper > 0 {
		xAt := func(i int) float64 {
			if n == 1 {
				return x0
			}
			return x0 + float64(i)*width/float64(n-1)
		}
		yAt := func(v float64) float64 { return bottom - chart.Fraction(v, upper)*pdfChartHeight }

		pdf.SetLineWidth(0.6)
		for _, line := range []struct {
			values []float64
			color  rgb
		}{{s.CumulativeKWh, colorKWh}, {s.CumulativeCost, colorCost}} {
			pdf.SetDrawColor(line.color.r, line.color.g, line.color.b)
			for i := 1; i < n; i++ {
				pdf.Line(xAt(i-1), yAt(line.values[i-1]), xAt(i), yAt(line.values[i]))
			}
		}
		pdf.Text(x0, bottom+4, fmt.Sprintf("year %d", s.Years[0]))
		pdf.Text(x0+width-12, bottom+4, fmt.Sprintf("year %d", s.Years[n-1]))
	}

	legendY := bottom + 8
	legend(pdf, x0, legendY, colorKWh, "kWh")
	legend(pdf, x0+30, legendY, colorCost, costUnit(r.Currency))
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.SetY(legendY + 4)
}

func legend(pdf *gofpdf.Fpdf, x, y float64, c rgb, label string) {
	pdf.SetFillColor(c.r, c.g, c.b)
	pdf.Rect(x, y-2.5, 4, 3, "F")
	pdf.Text(x+6, y, label)
}

// equivalenceBars draws one horizontal bar per equivalent on its own axis.
func equivalenceBars(pdf *gofpdf.Fpdf, tr func(string) string, r *Report) {
	barX := pdfMargin + pdfLabelWidth
	barWidth := pdfContentWidth - pdfLabelWidth - 35

	pdf.SetFillColor(colorKWh.r, colorKWh.g, colorKWh.b)
	pdf.SetDrawColor(colorGrid.r, colorGrid.g, colorGrid.b)
	for _, res := range r.Metrics.Equivalents.Results() {
		upper := r.Scales.Equivalence(res.Type)
		y := pdf.GetY()

		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(pdfLabelWidth, pdfBarHeight, tr(res.Label), "", 0, "L", false, 0, "")
		pdf.Rect(barX, y+1, barWidth, pdfBarHeight-2, "D")
		if filled := chart.Fraction(res.Value, upper) * barWidth; filled > 0 {
			pdf.Rect(barX, y+1, filled, pdfBarHeight-2, "F")
		}
		pdf.SetXY(barX+barWidth+2, y)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(33, pdfBarHeight,
			fmt.Sprintf("%s / %s", res.FormattedValue, greenops.FormatFloat(upper, 0)), "", 1, "L", false, 0, "")
	}
}
