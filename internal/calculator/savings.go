package calculator

import "fmt"

// Savings is the output of the savings conversion stage.
type Savings struct {
	EnergyKWh   float64
	Cost        float64
	CO2Kg       float64
	CO2Tonnes   float64
	ReductionGJ float64
}

// ConvertSavings turns a yearly cooling-load reduction (Btu) into electrical
// energy, cost and CO2 using the EER, price and emission factor.
func ConvertSavings(totalReductionBtu, eer, price, emissionFactor float64) (Savings, error) {
	if !(eer > 0) {
		return Savings{}, fmt.Errorf("%w: %v", ErrNonPositiveEER, eer)
	}

	kwh := totalReductionBtu / (eer * wattHoursPerKilowattHour)
	co2 := kwh * emissionFactor

	return Savings{
		EnergyKWh:   kwh,
		Cost:        kwh * price,
		CO2Kg:       co2,
		CO2Tonnes:   co2 / kgPerTonne,
		ReductionGJ: totalReductionBtu * JoulesPerBtu / joulesPerGigajoule,
	}, nil
}
