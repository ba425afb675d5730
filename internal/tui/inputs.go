package tui

import (
	"fmt"
	"strconv"

	"github.com/rshade/coolroof/internal/calculator"
)

// Field identifies one editable row of the calculator form.
type Field int

const (
	FieldArea Field = iota
	FieldRoofType
	FieldRoofInsulation
	FieldWallInsulation
	FieldEERBand
	FieldCustomEER
	FieldEnergyPrice
	FieldEmissionFactor
	FieldUnitCost
	FieldAutoScale

	fieldCount
)

// Label returns the row label.
func (f Field) Label() string {
	switch f {
	case FieldArea:
		return "Roof area (m²)"
	case FieldRoofType:
		return "Roof type"
	case FieldRoofInsulation:
		return "Roof insulation"
	case FieldWallInsulation:
		return "Wall insulation"
	case FieldEERBand:
		return "AC efficiency"
	case FieldCustomEER:
		return "Custom EER"
	case FieldEnergyPrice:
		return "Energy price"
	case FieldEmissionFactor:
		return "Emission factor"
	case FieldUnitCost:
		return "Coating cost/m²"
	case FieldAutoScale:
		return "Chart auto-scale"
	default:
		return fmt.Sprintf("Field(%d)", f)
	}
}

// numeric reports whether the field is edited through the text input.
func (f Field) numeric() bool {
	switch f {
	case FieldArea, FieldCustomEER, FieldEnergyPrice, FieldEmissionFactor, FieldUnitCost:
		return true
	default:
		return false
	}
}

// step is the left/right increment of a numeric field.
func (f Field) step() float64 {
	switch f {
	case FieldArea:
		return 50
	case FieldCustomEER:
		return 0.5
	case FieldEnergyPrice:
		return 0.05
	case FieldEmissionFactor:
		return 0.01
	case FieldUnitCost:
		return 5
	default:
		return 0
	}
}

// Inputs is the state of the calculator form. It is a plain value: every edit
// produces a new Configuration that is computed from scratch.
type Inputs struct {
	AreaM2         float64
	RoofType       calculator.RoofType
	RoofInsulation calculator.Insulation
	WallInsulation calculator.Insulation
	EERBand        calculator.EERBand
	// CustomEER overrides the band when positive.
	CustomEER      float64
	EnergyPrice    float64
	EmissionFactor float64
	UnitCost       float64
	AutoScale      bool
}

// DefaultInputs mirrors calculator.DefaultConfiguration.
func DefaultInputs() Inputs {
	cfg := calculator.DefaultConfiguration()
	return Inputs{
		AreaM2:         cfg.AreaM2,
		RoofType:       cfg.RoofType,
		RoofInsulation: cfg.RoofInsulation,
		WallInsulation: cfg.WallInsulation,
		EERBand:        calculator.EERBandStandard,
		EnergyPrice:    cfg.EnergyPrice,
		EmissionFactor: cfg.EmissionFactor,
		UnitCost:       calculator.DefaultUnitCost,
		AutoScale:      true,
	}
}

// Configuration builds the calculator input.
func (in Inputs) Configuration() calculator.Configuration {
	return calculator.Configuration{
		AreaM2:         in.AreaM2,
		RoofType:       in.RoofType,
		RoofInsulation: in.RoofInsulation,
		WallInsulation: in.WallInsulation,
		EER:            calculator.ResolveEER(in.EERBand, in.CustomEER),
		EnergyPrice:    in.EnergyPrice,
		EmissionFactor: in.EmissionFactor,
	}
}

// Value renders a field for display.
func (in Inputs) Value(f Field) string {
	switch f {
	case FieldArea:
		return formatInput(in.AreaM2)
	case FieldRoofType:
		return in.RoofType.String()
	case FieldRoofInsulation:
		return in.RoofInsulation.String()
	case FieldWallInsulation:
		return in.WallInsulation.String()
	case FieldEERBand:
		return fmt.Sprintf("%s (EER %g)", in.EERBand, in.EERBand.Value())
	case FieldCustomEER:
		if !(in.CustomEER > 0) {
			return "off"
		}
		return formatInput(in.CustomEER)
	case FieldEnergyPrice:
		return formatInput(in.EnergyPrice)
	case FieldEmissionFactor:
		return formatInput(in.EmissionFactor)
	case FieldUnitCost:
		return formatInput(in.UnitCost)
	case FieldAutoScale:
		if in.AutoScale {
			return "on"
		}
		return "off"
	default:
		return ""
	}
}

// number returns a pointer to a numeric field, or nil.
func (in *Inputs) number(f Field) *float64 {
	switch f {
	case FieldArea:
		return &in.AreaM2
	case FieldCustomEER:
		return &in.CustomEER
	case FieldEnergyPrice:
		return &in.EnergyPrice
	case FieldEmissionFactor:
		return &in.EmissionFactor
	case FieldUnitCost:
		return &in.UnitCost
	default:
		return nil
	}
}

// Cycle moves an enumerated field by delta (+1 or -1), wrapping around, and
// nudges numeric fields by their step, never below zero.
func (in *Inputs) Cycle(f Field, delta int) {
	switch f {
	case FieldRoofType:
		in.RoofType = cycle(calculator.RoofTypes(), in.RoofType, delta)
	case FieldRoofInsulation:
		in.RoofInsulation = cycle(calculator.RoofInsulationPresets(), in.RoofInsulation, delta)
	case FieldWallInsulation:
		in.WallInsulation = cycle(calculator.WallInsulationPresets(), in.WallInsulation, delta)
	case FieldEERBand:
		in.EERBand = cycle(calculator.EERBands(), in.EERBand, delta)
	case FieldAutoScale:
		in.AutoScale = !in.AutoScale
	default:
		if p := in.number(f); p != nil {
			*p = max(*p+float64(delta)*f.step(), 0)
		}
	}
}

// Set parses and stores a numeric field.
func (in *Inputs) Set(f Field, raw string) error {
	p := in.number(f)
	if p == nil {
		return fmt.Errorf("%s is not a numeric field", f.Label())
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", raw)
	}
	*p = v
	return nil
}

// cycle returns the option delta positions away from current. A value that
// is not among the options (e.g. a custom thickness) moves to the first one.
func cycle[T comparable](options []T, current T, delta int) T {
	if len(options) == 0 {
		return current
	}
	for i, o := range options {
		if o == current {
			n := len(options)
			return options[((i+delta)%n+n)%n]
		}
	}
	return options[0]
}

func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
