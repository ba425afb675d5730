package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// SummaryHeader is the column order of CSV and spreadsheet summaries.
//
//nolint:gochecknoglobals // Fixed column layout.
var SummaryHeader = []string{
	"area_m2",
	"roof_type",
	"roof_insulation",
	"wall_insulation",
	"eer",
	"energy_price",
	"emission_factor",
	"kwh_per_year",
	"cost_per_year",
	"kwh_20y",
	"cost_20y",
	"tco2_per_year",
}

// Summary is the flat, one-row view of a report.
type Summary struct {
	AreaM2         float64
	RoofType       string
	RoofInsulation string
	WallInsulation string
	EER            float64
	EnergyPrice    float64
	EmissionFactor float64
	KWhPerYear     float64
	CostPerYear    float64
	KWh20y         float64
	Cost20y        float64
	TCO2PerYear    float64
}

// Summary flattens the report.
func (r *Report) Summary() Summary {
	c := r.Configuration
	m := r.Metrics
	return Summary{
		AreaM2:         c.AreaM2,
		RoofType:       c.RoofType.String(),
		RoofInsulation: c.RoofInsulation.String(),
		WallInsulation: c.WallInsulation.String(),
		EER:            c.EER,
		EnergyPrice:    c.EnergyPrice,
		EmissionFactor: c.EmissionFactor,
		KWhPerYear:     m.EnergyKWh,
		CostPerYear:    m.CostSaved,
		KWh20y:         m.Series.FinalKWh(),
		Cost20y:        m.Series.FinalCost(),
		TCO2PerYear:    m.CO2Tonnes,
	}
}

// Values returns the row in SummaryHeader order.
func (s Summary) Values() []any {
	return []any{
		s.AreaM2, s.RoofType, s.RoofInsulation, s.WallInsulation,
		s.EER, s.EnergyPrice, s.EmissionFactor,
		s.KWhPerYear, s.CostPerYear, s.KWh20y, s.Cost20y, s.TCO2PerYear,
	}
}

// Record returns the row as CSV fields.
func (s Summary) Record() []string {
	f := func(v float64, prec int) string { return strconv.FormatFloat(v, 'f', prec, 64) }
	return []string{
		f(s.AreaM2, -1),
		s.RoofType,
		s.RoofInsulation,
		s.WallInsulation,
		f(s.EER, -1),
		f(s.EnergyPrice, -1),
		f(s.EmissionFactor, -1),
		f(s.KWhPerYear, 2),
		f(s.CostPerYear, 2),
		f(s.KWh20y, 2),
		f(s.Cost20y, 2),
		f(s.TCO2PerYear, 3),
	}
}

// WriteCSV writes a header and one row per report.
func WriteCSV(w io.Writer, reports []*Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SummaryHeader); err != nil {
		return err
	}
	for _, r := range reports {
		if err := cw.Write(r.Summary().Record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
