package greenops

import (
	"fmt"
	"math"
	"strings"
)

// EquivalentsFor converts yearly CO2 (kg) and energy (kWh) savings into
// equivalencies.
func EquivalentsFor(co2Kg, energyKWh float64) CoolingEquivalents {
	return CoolingEquivalents{
		Trees:      divide(co2Kg, KgCO2PerTreeYear),
		CarKm:      divide(co2Kg, KgCO2PerCarKm),
		Households: divide(energyKWh, KWhPerHouseholdYear),
		LightBulbs: divide(energyKWh, KWhPerBulbYear),
	}
}

// divide returns v / factor, or 0 for a non-positive factor.
func divide(v, factor float64) float64 {
	if factor <= 0 {
		return 0
	}
	return v / factor
}

// Value returns the equivalency of the given type.
func (c CoolingEquivalents) Value(t EquivalencyType) float64 {
	switch t {
	case EquivalencyTrees:
		return c.Trees
	case EquivalencyCarKm:
		return c.CarKm
	case EquivalencyHouseholds:
		return c.Households
	case EquivalencyLightBulbs:
		return c.LightBulbs
	default:
		return 0
	}
}

// Types lists the equivalency types in display order.
func Types() []EquivalencyType {
	return []EquivalencyType{
		EquivalencyTrees, EquivalencyCarKm, EquivalencyHouseholds, EquivalencyLightBulbs,
	}
}

// Results returns display-ready results in display order. Households keep
// one decimal place since they are usually small.
func (c CoolingEquivalents) Results() []EquivalencyResult {
	results := make([]EquivalencyResult, 0, len(Types()))
	for _, t := range Types() {
		v := c.Value(t)
		results = append(results, EquivalencyResult{
			Type:           t,
			Value:          v,
			FormattedValue: formatEquivalencyValue(t, v),
			Label:          t.Label(),
		})
	}
	return results
}

// DisplayText renders a one-line summary, e.g.
// "Equivalent to ~200 trees, ~21,975 car km, ~2.9 households or ~571 LED bulbs".
func (c CoolingEquivalents) DisplayText() string {
	parts := make([]string, 0, len(Types()))
	for _, r := range c.Results() {
		var unit string
		switch r.Type {
		case EquivalencyTrees:
			unit = "trees"
		case EquivalencyCarKm:
			unit = "car km"
		case EquivalencyHouseholds:
			unit = "households"
		case EquivalencyLightBulbs:
			unit = "LED bulbs"
		}
		parts = append(parts, fmt.Sprintf("~%s %s", r.FormattedValue, unit))
	}
	last := len(parts) - 1
	return "Equivalent to " + strings.Join(parts[:last], ", ") + " or " + parts[last]
}

// formatEquivalencyValue rounds to an integer (one decimal for households)
// and switches to abbreviated form for very large values.
func formatEquivalencyValue(t EquivalencyType, v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	if t == EquivalencyHouseholds {
		return FormatFloat(v, 1)
	}
	return FormatNumber(int64(math.Round(v)))
}
