package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/rshade/coolroof/internal/calculator"
	"github.com/rshade/coolroof/internal/config"
	"github.com/rshade/coolroof/internal/report"
)

// CalculatorParams holds the calculator input flags shared by calc, payback,
// export and interactive. Flags that were not set fall back to the
// configuration defaults. Exported for testing.
type CalculatorParams struct {
	Area           float64
	RoofType       string
	RoofInsulation string
	WallInsulation string
	EERBand        string
	EER            float64
	Price          float64
	EmissionFactor float64
	UnitCost       float64
	Currency       string
	Name           string
}

// bindCalculatorFlags registers the calculator input flags on fs.
func bindCalculatorFlags(fs *pflag.FlagSet, p *CalculatorParams) {
	fs.Float64Var(&p.Area, "area", calculator.DefaultAreaM2, "roof area in m²")
	fs.StringVar(&p.RoofType, "roof-type", calculator.RoofTypeMetal.String(), "roof type (metal, concrete, bitumen)")
	fs.StringVar(&p.RoofInsulation, "roof-insulation", "none",
		"roof insulation: none or material-thickness_mm, e.g. xps-100, pu-80")
	fs.StringVar(&p.WallInsulation, "wall-insulation", "none",
		"wall insulation: none or material-thickness_mm, e.g. xps-50")
	fs.StringVar(&p.EERBand, "eer-band", calculator.EERBandStandard.String(),
		"air-conditioning efficiency band (old, standard, high)")
	fs.Float64Var(&p.EER, "eer", 0, "custom EER (Btu/Wh); overrides --eer-band when > 0")
	fs.Float64Var(&p.Price, "price", calculator.DefaultEnergyPrice, "energy price per kWh")
	fs.Float64Var(&p.EmissionFactor, "emission-factor", calculator.DefaultEmissionFactor, "grid emission factor (kg CO2/kWh)")
	fs.Float64Var(&p.UnitCost, "unit-cost", calculator.DefaultUnitCost, "coating cost per m² for payback")
	fs.StringVar(&p.Currency, "currency", "", "currency label (default from config)")
	fs.StringVar(&p.Name, "name", "", "scenario name shown in reports")
}

// ResolveDefaults overlays the flags that were explicitly set onto the
// configuration defaults and validates the result. Exported for testing.
func ResolveDefaults(fs *pflag.FlagSet, p *CalculatorParams, cfg *config.Config) (config.DefaultsConfig, error) {
	d := cfg.Defaults

	if fs.Changed("area") {
		d.AreaM2 = p.Area
	}
	if fs.Changed("roof-type") {
		d.RoofType = p.RoofType
	}
	if fs.Changed("roof-insulation") {
		d.RoofInsulation = p.RoofInsulation
	}
	if fs.Changed("wall-insulation") {
		d.WallInsulation = p.WallInsulation
	}
	if fs.Changed("eer-band") {
		d.EERBand = p.EERBand
		// An explicit band replaces a configured custom EER.
		d.EER = 0
	}
	if fs.Changed("eer") {
		if p.EER <= 0 {
			return d, fmt.Errorf("--eer: %w: %v", calculator.ErrNonPositiveEER, p.EER)
		}
		d.EER = p.EER
	}
	if fs.Changed("price") {
		d.EnergyPrice = p.Price
	}
	if fs.Changed("emission-factor") {
		d.EmissionFactor = p.EmissionFactor
	}
	if fs.Changed("unit-cost") {
		d.UnitCost = p.UnitCost
	}
	if fs.Changed("currency") {
		d.Currency = p.Currency
	}

	if _, err := d.Calculator(); err != nil {
		return d, err
	}
	if d.UnitCost < 0 {
		return d, fmt.Errorf("--unit-cost: %w: %v", calculator.ErrNegativeCapex, d.UnitCost)
	}
	return d, nil
}

// chartSettings converts the charts section into report chart settings.
func chartSettings(cfg *config.Config) report.ChartSettings {
	o := cfg.Charts.Overrides
	return report.ChartSettings{
		AutoScale:  cfg.Charts.AutoScale,
		Cumulative: o.Cumulative,
		Trees:      o.Trees,
		CarKm:      o.CarKm,
		Households: o.Households,
		LightBulbs: o.LightBulbs,
	}
}

// buildReport resolves the flags and computes a report. The payback is
// included when withPayback is set.
func buildReport(
	fs *pflag.FlagSet,
	p *CalculatorParams,
	cfg *config.Config,
	withPayback bool,
) (*report.Report, error) {
	d, err := ResolveDefaults(fs, p, cfg)
	if err != nil {
		return nil, err
	}
	calc, err := d.Calculator()
	if err != nil {
		return nil, err
	}

	opts := report.Options{
		Name:     p.Name,
		Currency: d.Currency,
		Charts:   chartSettings(cfg),
	}
	if withPayback {
		unitCost := d.UnitCost
		opts.UnitCost = &unitCost
	}
	return report.New(calc, opts)
}
