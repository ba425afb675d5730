// Package greenops converts energy and CO2 savings into relatable
// equivalencies (trees, car kilometres, households, light bulbs) and formats
// numbers for display.
package greenops

import "fmt"

// EquivalencyType is a category of savings equivalency.
type EquivalencyType int

const (
	// EquivalencyTrees is trees absorbing the saved CO2 for a year.
	EquivalencyTrees EquivalencyType = iota

	// EquivalencyCarKm is car kilometres whose emissions were avoided.
	EquivalencyCarKm

	// EquivalencyHouseholds is households whose yearly electricity equals the saved energy.
	EquivalencyHouseholds

	// EquivalencyLightBulbs is LED bulbs that the saved energy keeps lit for a year.
	EquivalencyLightBulbs
)

// String returns a short identifier for the type.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyTrees:
		return "Trees"
	case EquivalencyCarKm:
		return "CarKm"
	case EquivalencyHouseholds:
		return "Households"
	case EquivalencyLightBulbs:
		return "LightBulbs"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// Label returns the descriptive phrase used next to the value.
func (e EquivalencyType) Label() string {
	switch e {
	case EquivalencyTrees:
		return "trees planted (per year)"
	case EquivalencyCarKm:
		return "car km avoided (per year)"
	case EquivalencyHouseholds:
		return "households powered (per year)"
	case EquivalencyLightBulbs:
		return "LED bulbs lit for a year"
	default:
		return e.String()
	}
}

// CoolingEquivalents are the four equivalencies of one year of savings.
type CoolingEquivalents struct {
	Trees      float64 `json:"trees"`
	CarKm      float64 `json:"car_km"`
	Households float64 `json:"households"`
	LightBulbs float64 `json:"light_bulbs"`
}

// EquivalencyResult is a single equivalency prepared for display.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}
