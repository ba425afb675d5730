package calculator

import (
	"fmt"
	"math"

	"github.com/rshade/coolroof/internal/greenops"
)

// Validate rejects configurations the model cannot compute. Zero area or a
// zero price are valid and produce zero savings.
func (c Configuration) Validate() error {
	if !finiteNonNegative(c.AreaM2) {
		return fmt.Errorf("%w: %v", ErrNegativeArea, c.AreaM2)
	}
	if _, err := lookupRoof(c.RoofType); err != nil {
		return err
	}
	if !(c.EER > 0) || math.IsInf(c.EER, 0) {
		return fmt.Errorf("%w: %v", ErrNonPositiveEER, c.EER)
	}
	if !finiteNonNegative(c.EnergyPrice) {
		return fmt.Errorf("%w: %v", ErrNegativePrice, c.EnergyPrice)
	}
	if !finiteNonNegative(c.EmissionFactor) {
		return fmt.Errorf("%w: %v", ErrNegativeEmissionFactor, c.EmissionFactor)
	}
	return nil
}

// finiteNonNegative reports whether v is a real number >= 0.
func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

// validThickness reports whether mm is a finite, positive layer thickness.
func validThickness(mm float64) bool {
	return mm > 0 && !math.IsInf(mm, 0)
}

// Compute runs the full calculation chain. It returns no partial result on error.
func Compute(cfg Configuration) (Metrics, error) {
	if err := cfg.Validate(); err != nil {
		return Metrics{}, err
	}

	thermal, err := ComputeThermal(cfg.RoofType, cfg.RoofInsulation, cfg.WallInsulation)
	if err != nil {
		return Metrics{}, err
	}

	multiplier, err := RoofMultiplier(cfg.RoofType)
	if err != nil {
		return Metrics{}, err
	}
	perArea := ReductionPerArea(multiplier, thermal)
	total := TotalReduction(cfg.AreaM2, perArea)

	savings, err := ConvertSavings(total, cfg.EER, cfg.EnergyPrice, cfg.EmissionFactor)
	if err != nil {
		return Metrics{}, err
	}

	return Metrics{
		Thermal:            thermal,
		ReductionBtuPerFt2: perArea,
		TotalReductionBtu:  total,
		ReductionGJ:        savings.ReductionGJ,
		EnergyKWh:          savings.EnergyKWh,
		CostSaved:          savings.Cost,
		CO2Kg:              savings.CO2Kg,
		CO2Tonnes:          savings.CO2Tonnes,
		Equivalents:        greenops.EquivalentsFor(savings.CO2Kg, savings.EnergyKWh),
		Series:             NewSeries(SeriesYears, savings.EnergyKWh, savings.Cost),
	}, nil
}
