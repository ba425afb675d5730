package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet     = "Summary"
	equivalentsSheet = "Equivalents"
	defaultSheet     = "Sheet1"
)

// WriteXLSX writes a workbook with a summary row per report, the 20-year
// series of each report with a cumulative chart, and the equivalents.
func WriteXLSX(w io.Writer, reports []*Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, summarySheet); err != nil {
		return err
	}
	if err := writeSummarySheet(f, reports); err != nil {
		return err
	}
	for i, r := range reports {
		name := seriesSheetName(i, len(reports))
		if err := writeSeriesSheet(f, name, r); err != nil {
			return fmt.Errorf("series sheet %q: %w", name, err)
		}
	}
	if err := writeEquivalentsSheet(f, reports); err != nil {
		return err
	}

	return f.Write(w)
}

func seriesSheetName(i, n int) string {
	if n == 1 {
		return "Series"
	}
	return fmt.Sprintf("Series %d", i+1)
}

func writeSummarySheet(f *excelize.File, reports []*Report) error {
	header := make([]any, 0, len(SummaryHeader)+1)
	header = append(header, "name")
	for _, h := range SummaryHeader {
		header = append(header, h)
	}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range reports {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := append([]any{r.Name}, r.Summary().Values()...)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeSeriesSheet(f *excelize.File, sheet string, r *Report) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []any{"year", "kwh", "cost", "cumulative_kwh", "cumulative_cost"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	s := r.Metrics.Series
	for i := range s.Len() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{s.Years[i], s.EnergyKWh[i], s.Cost[i], s.CumulativeKWh[i], s.CumulativeCost[i]}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if s.Len() == 0 {
		return nil
	}

	last := s.Len() + 1
	categories := fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, last)
	upper := r.Scales.Cumulative
	chartDef := &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("'%s'!$D$1", sheet),
				Categories: categories,
				Values:     fmt.Sprintf("'%s'!$D$2:$D$%d", sheet, last),
			},
			{
				Name:       fmt.Sprintf("'%s'!$E$1", sheet),
				Categories: categories,
				Values:     fmt.Sprintf("'%s'!$E$2:$E$%d", sheet, last),
			},
		},
		Title: []excelize.RichTextRun{{Text: "20-year cumulative savings"}},
	}
	if upper > 0 {
		minimum := 0.0
		chartDef.YAxis = excelize.ChartAxis{Minimum: &minimum, Maximum: &upper}
	}
	return f.AddChart(sheet, "G2", chartDef)
}

func writeEquivalentsSheet(f *excelize.File, reports []*Report) error {
	if _, err := f.NewSheet(equivalentsSheet); err != nil {
		return err
	}
	header := []any{"name", "trees", "car_km", "households", "light_bulbs"}
	if err := f.SetSheetRow(equivalentsSheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range reports {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		e := r.Metrics.Equivalents
		row := []any{r.Name, e.Trees, e.CarKm, e.Households, e.LightBulbs}
		if err := f.SetSheetRow(equivalentsSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
