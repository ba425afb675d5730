// Package calculator estimates the cooling-energy, cost and CO2 savings of a
// reflective roof coating.
//
// The package is a pure function from a Configuration to Metrics. Nothing is
// cached between calls: every input change recomputes the whole chain
// (thermal resistance, cooling reduction, savings conversion, equivalence).
package calculator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rshade/coolroof/internal/greenops"
)

// RoofType identifies a roof construction in the roof table.
type RoofType int

const (
	// RoofTypeUnknown is the zero value and never resolves in the roof table.
	RoofTypeUnknown RoofType = iota
	// RoofTypeMetal is a profiled metal sheet roof.
	RoofTypeMetal
	// RoofTypeConcrete is a concrete slab roof.
	RoofTypeConcrete
	// RoofTypeBitumen is a bitumen membrane roof.
	RoofTypeBitumen
)

// String returns the tag used by the CLI and in exports.
func (r RoofType) String() string {
	switch r {
	case RoofTypeMetal:
		return "metal"
	case RoofTypeConcrete:
		return "concrete"
	case RoofTypeBitumen:
		return "bitumen"
	case RoofTypeUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("RoofType(%d)", int(r))
	}
}

// MarshalText renders the roof type tag.
func (r RoofType) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses a roof type tag.
func (r *RoofType) UnmarshalText(text []byte) error {
	parsed, err := ParseRoofType(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// RoofTypes lists every roof type in display order.
func RoofTypes() []RoofType {
	return []RoofType{RoofTypeMetal, RoofTypeConcrete, RoofTypeBitumen}
}

// ParseRoofType parses a roof type tag (case-insensitive).
func ParseRoofType(s string) (RoofType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metal":
		return RoofTypeMetal, nil
	case "concrete":
		return RoofTypeConcrete, nil
	case "bitumen":
		return RoofTypeBitumen, nil
	default:
		return RoofTypeUnknown, fmt.Errorf("%w: %q", ErrUnknownRoofType, s)
	}
}

// Material is an insulation material family.
type Material int

const (
	// MaterialNone marks the absence of an insulation layer.
	MaterialNone Material = iota
	// MaterialPolystyreneFoam is extruded polystyrene (XPS).
	MaterialPolystyreneFoam
	// MaterialPolyurethaneFoam is rigid polyurethane (PU).
	MaterialPolyurethaneFoam
)

// String returns the short material tag.
func (m Material) String() string {
	switch m {
	case MaterialNone:
		return "none"
	case MaterialPolystyreneFoam:
		return "xps"
	case MaterialPolyurethaneFoam:
		return "pu"
	default:
		return fmt.Sprintf("Material(%d)", int(m))
	}
}

// Insulation is either no layer (the zero value) or a layer of a material
// with a thickness in millimetres.
type Insulation struct {
	Material    Material
	ThicknessMM float64
}

// NoInsulation returns the empty insulation choice.
func NoInsulation() Insulation {
	return Insulation{}
}

// Layer returns an insulation layer of the given material and thickness.
func Layer(material Material, thicknessMM float64) Insulation {
	return Insulation{Material: material, ThicknessMM: thicknessMM}
}

// IsNone reports whether no insulation layer is present.
func (i Insulation) IsNone() bool {
	return i.Material == MaterialNone
}

// String renders the insulation tag, e.g. "none" or "xps-50".
func (i Insulation) String() string {
	if i.IsNone() {
		return "none"
	}
	return i.Material.String() + "-" + strconv.FormatFloat(i.ThicknessMM, 'f', -1, 64)
}

// MarshalText renders the insulation tag.
func (i Insulation) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText parses an insulation tag.
func (i *Insulation) UnmarshalText(text []byte) error {
	parsed, err := ParseInsulation(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// insulationTagParts is the number of parts in a "material-thickness" tag.
const insulationTagParts = 2

// ParseInsulation parses "none" or a "material-thickness" tag such as
// "xps-100" or "PU-80". Input surfaces use it once; the calculator only ever
// sees the parsed variant.
func ParseInsulation(s string) (Insulation, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	if tag == "" || tag == "none" {
		return NoInsulation(), nil
	}

	parts := strings.SplitN(tag, "-", insulationTagParts)
	if len(parts) != insulationTagParts {
		return Insulation{}, fmt.Errorf("invalid insulation %q: expected none or material-thickness", s)
	}

	var material Material
	switch parts[0] {
	case "xps":
		material = MaterialPolystyreneFoam
	case "pu":
		material = MaterialPolyurethaneFoam
	default:
		return Insulation{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, parts[0])
	}

	mm, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Insulation{}, fmt.Errorf("invalid insulation thickness in %q: %w", s, err)
	}
	if !validThickness(mm) {
		return Insulation{}, fmt.Errorf("%w: %q", ErrInvalidThickness, s)
	}

	return Layer(material, mm), nil
}

// Configuration is the complete, immutable input of one computation.
type Configuration struct {
	AreaM2         float64    `json:"area_m2"`
	RoofType       RoofType   `json:"roof_type"`
	RoofInsulation Insulation `json:"roof_insulation"`
	WallInsulation Insulation `json:"wall_insulation"`
	// EER is the air-conditioning energy efficiency ratio (Btu/Wh).
	EER float64 `json:"eer"`
	// EnergyPrice is in currency per kWh.
	EnergyPrice float64 `json:"energy_price"`
	// EmissionFactor is in kg CO2 per kWh.
	EmissionFactor float64 `json:"emission_factor"`
}

// DefaultConfiguration returns the configuration the tool starts from.
func DefaultConfiguration() Configuration {
	return Configuration{
		AreaM2:         DefaultAreaM2,
		RoofType:       RoofTypeMetal,
		RoofInsulation: NoInsulation(),
		WallInsulation: NoInsulation(),
		EER:            EERBandStandard.Value(),
		EnergyPrice:    DefaultEnergyPrice,
		EmissionFactor: DefaultEmissionFactor,
	}
}

// ThermalResistance holds the derived R-values (m²K/W) and U-values (W/m²K).
type ThermalResistance struct {
	RoofLayer float64 `json:"roof_layer_r"`
	WallLayer float64 `json:"wall_layer_r"`
	RoofTotal float64 `json:"roof_total_r"`
	WallTotal float64 `json:"wall_total_r"`
	RoofU     float64 `json:"roof_u"`
	WallU     float64 `json:"wall_u"`
}

// Metrics is everything derived from a Configuration.
type Metrics struct {
	Thermal ThermalResistance `json:"thermal"`

	// ReductionBtuPerFt2 is the cooling-load reduction per unit area per year.
	ReductionBtuPerFt2 float64 `json:"reduction_btu_per_ft2"`
	// TotalReductionBtu is the cooling-load reduction of the whole roof per year.
	TotalReductionBtu float64 `json:"total_reduction_btu"`
	// ReductionGJ is TotalReductionBtu in gigajoules.
	ReductionGJ float64 `json:"reduction_gj"`

	EnergyKWh float64 `json:"energy_kwh"`
	CostSaved float64 `json:"cost_saved"`
	CO2Kg     float64 `json:"co2_kg"`
	CO2Tonnes float64 `json:"co2_t"`

	Equivalents greenops.CoolingEquivalents `json:"equivalents"`
	Series      Series                      `json:"series"`
}
