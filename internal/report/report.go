// Package report turns a calculator run into a shareable record and renders
// or exports it (table, JSON, NDJSON, CSV, XLSX, PDF).
package report

import (
	"crypto/rand"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/coolroof/internal/calculator"
	"github.com/rshade/coolroof/internal/chart"
	"github.com/rshade/coolroof/internal/greenops"
)

// Coating echoes the fixed coating properties.
type Coating struct {
	SolarReflectance float64 `json:"solar_reflectance"`
	Emissivity       float64 `json:"emissivity"`
	SRI              int     `json:"sri"`
}

// ChartSettings are the axis options of the rendered charts.
type ChartSettings struct {
	AutoScale  bool
	Cumulative float64
	Trees      float64
	CarKm      float64
	Households float64
	LightBulbs float64
}

// DefaultChartSettings auto-scales every chart.
func DefaultChartSettings() ChartSettings {
	return ChartSettings{
		AutoScale:  true,
		Cumulative: 150_000,
		Trees:      300,
		CarKm:      40_000,
		Households: 200,
		LightBulbs: 50_000,
	}
}

// override returns the manual maximum of an equivalence chart.
func (s ChartSettings) override(t greenops.EquivalencyType) float64 {
	switch t {
	case greenops.EquivalencyTrees:
		return s.Trees
	case greenops.EquivalencyCarKm:
		return s.CarKm
	case greenops.EquivalencyHouseholds:
		return s.Households
	case greenops.EquivalencyLightBulbs:
		return s.LightBulbs
	default:
		return 0
	}
}

// Scales holds the upper bound of every chart axis.
type Scales struct {
	Cumulative float64 `json:"cumulative"`
	Trees      float64 `json:"trees"`
	CarKm      float64 `json:"car_km"`
	Households float64 `json:"households"`
	LightBulbs float64 `json:"light_bulbs"`
}

// Equivalence returns the bound of one equivalence chart.
func (s Scales) Equivalence(t greenops.EquivalencyType) float64 {
	switch t {
	case greenops.EquivalencyTrees:
		return s.Trees
	case greenops.EquivalencyCarKm:
		return s.CarKm
	case greenops.EquivalencyHouseholds:
		return s.Households
	case greenops.EquivalencyLightBulbs:
		return s.LightBulbs
	default:
		return 0
	}
}

// ComputeScales derives every chart bound from the metrics.
func ComputeScales(m calculator.Metrics, s ChartSettings) Scales {
	eq := func(t greenops.EquivalencyType) float64 {
		return chart.EquivalenceAxis(s.AutoScale, s.override(t)).Max(m.Equivalents.Value(t))
	}
	return Scales{
		Cumulative: chart.CumulativeAxis(s.AutoScale, s.Cumulative).Max(m.Series.Peak()),
		Trees:      eq(greenops.EquivalencyTrees),
		CarKm:      eq(greenops.EquivalencyCarKm),
		Households: eq(greenops.EquivalencyHouseholds),
		LightBulbs: eq(greenops.EquivalencyLightBulbs),
	}
}

// Options control what a report includes.
type Options struct {
	Name     string
	Currency string
	// UnitCost is the coating cost per m²; payback is computed when set.
	UnitCost *float64
	Charts   ChartSettings
	Now      func() time.Time
}

// Report is one calculator run with everything needed to present it.
type Report struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name,omitempty"`
	GeneratedAt   time.Time                `json:"generated_at"`
	Currency      string                   `json:"currency"`
	Configuration calculator.Configuration `json:"configuration"`
	Coating       Coating                  `json:"coating"`
	Metrics       calculator.Metrics       `json:"metrics"`
	Payback       *calculator.Payback      `json:"payback,omitempty"`
	Scales        Scales                   `json:"scales"`
}

// New computes the metrics for cfg and assembles a report. Configuration
// errors are returned unchanged. An undefined payback is not an error: the
// report carries a Payback with Defined set to false.
func New(cfg calculator.Configuration, opts Options) (*Report, error) {
	metrics, err := calculator.Compute(cfg)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	ts := now().UTC()

	r := &Report{
		ID:            ulid.MustNew(ulid.Timestamp(ts), rand.Reader).String(),
		Name:          opts.Name,
		GeneratedAt:   ts,
		Currency:      opts.Currency,
		Configuration: cfg,
		Coating: Coating{
			SolarReflectance: calculator.CoatingSolarReflectance,
			Emissivity:       calculator.CoatingEmissivity,
			SRI:              calculator.CoatingSRI,
		},
		Metrics: metrics,
		Scales:  ComputeScales(metrics, opts.Charts),
	}

	if opts.UnitCost != nil {
		p, pErr := calculator.ComputePayback(calculator.Capex(*opts.UnitCost, cfg.AreaM2), metrics.CostSaved)
		if pErr != nil && !errors.Is(pErr, calculator.ErrPaybackUndefined) {
			return nil, pErr
		}
		r.Payback = &p
	}

	return r, nil
}
