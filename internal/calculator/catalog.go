package calculator

import (
	"fmt"
	"strings"
)

// roofProperties are the fixed constants of a roof construction.
type roofProperties struct {
	multiplier     float64
	baseResistance float64
}

// roofTable maps each roof type to its coating multiplier and structural R-value.
//
//nolint:gochecknoglobals // Fixed lookup table.
var roofTable = map[RoofType]roofProperties{
	RoofTypeMetal:    {multiplier: 1.00, baseResistance: 0.17},
	RoofTypeConcrete: {multiplier: 0.95, baseResistance: 0.50},
	RoofTypeBitumen:  {multiplier: 1.05, baseResistance: 0.25},
}

// lookupRoof returns the roof constants or ErrUnknownRoofType.
func lookupRoof(r RoofType) (roofProperties, error) {
	props, ok := roofTable[r]
	if !ok {
		return roofProperties{}, fmt.Errorf("%w: %s", ErrUnknownRoofType, r)
	}
	return props, nil
}

// RoofMultiplier returns the coating effectiveness multiplier of a roof type.
func RoofMultiplier(r RoofType) (float64, error) {
	props, err := lookupRoof(r)
	return props.multiplier, err
}

// RoofBaseResistance returns the structural R-value (m²K/W) of a roof type.
func RoofBaseResistance(r RoofType) (float64, error) {
	props, err := lookupRoof(r)
	return props.baseResistance, err
}

// Conductivity returns the thermal conductivity (W/mK) of a material.
func Conductivity(m Material) (float64, error) {
	switch m {
	case MaterialPolystyreneFoam:
		return PolystyreneConductivity, nil
	case MaterialPolyurethaneFoam:
		return PolyurethaneConductivity, nil
	case MaterialNone:
		return 0, fmt.Errorf("%w: no material", ErrUnknownMaterial)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownMaterial, m)
	}
}

// RoofInsulationPresets are the roof insulation choices offered by input surfaces.
func RoofInsulationPresets() []Insulation {
	return []Insulation{
		NoInsulation(),
		Layer(MaterialPolystyreneFoam, 50),
		Layer(MaterialPolystyreneFoam, 80),
		Layer(MaterialPolystyreneFoam, 100),
		Layer(MaterialPolystyreneFoam, 150),
		Layer(MaterialPolyurethaneFoam, 50),
		Layer(MaterialPolyurethaneFoam, 80),
		Layer(MaterialPolyurethaneFoam, 100),
	}
}

// WallInsulationPresets are the wall insulation choices offered by input surfaces.
func WallInsulationPresets() []Insulation {
	return []Insulation{
		NoInsulation(),
		Layer(MaterialPolystyreneFoam, 50),
		Layer(MaterialPolyurethaneFoam, 80),
	}
}

// EERBand is a banded default for air-conditioning efficiency.
type EERBand int

const (
	// EERBandOld is legacy equipment.
	EERBandOld EERBand = iota
	// EERBandStandard is typical current equipment.
	EERBandStandard
	// EERBandHigh is high-efficiency equipment.
	EERBandHigh
)

// String returns the band tag.
func (b EERBand) String() string {
	switch b {
	case EERBandOld:
		return "old"
	case EERBandStandard:
		return "standard"
	case EERBandHigh:
		return "high"
	default:
		return fmt.Sprintf("EERBand(%d)", int(b))
	}
}

// Value returns the EER of the band.
func (b EERBand) Value() float64 {
	switch b {
	case EERBandOld:
		return 9.0
	case EERBandHigh:
		return 13.0
	case EERBandStandard:
		return 11.0
	default:
		return 11.0
	}
}

// EERBands lists the bands in display order.
func EERBands() []EERBand {
	return []EERBand{EERBandOld, EERBandStandard, EERBandHigh}
}

// ParseEERBand parses a band tag (case-insensitive).
func ParseEERBand(s string) (EERBand, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "old":
		return EERBandOld, nil
	case "standard", "":
		return EERBandStandard, nil
	case "high":
		return EERBandHigh, nil
	default:
		return EERBandStandard, fmt.Errorf("%w: %q", ErrUnknownEERBand, s)
	}
}

// ResolveEER returns the custom EER when one is given (> 0), else the band value.
func ResolveEER(band EERBand, custom float64) float64 {
	if custom > 0 {
		return custom
	}
	return band.Value()
}
