package calculator

import "fmt"

// mmPerMeter converts insulation thickness to metres.
const mmPerMeter = 1000.0

// LayerResistance returns the R-value of an insulation layer, thickness / λ.
// No insulation has zero resistance.
func LayerResistance(ins Insulation) (float64, error) {
	if ins.IsNone() {
		return 0, nil
	}
	if !validThickness(ins.ThicknessMM) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidThickness, ins)
	}
	lambda, err := Conductivity(ins.Material)
	if err != nil {
		return 0, err
	}
	return (ins.ThicknessMM / mmPerMeter) / lambda, nil
}

// ComputeThermal derives roof and wall total resistances from the roof type
// and the two insulation choices.
func ComputeThermal(roof RoofType, roofIns, wallIns Insulation) (ThermalResistance, error) {
	props, err := lookupRoof(roof)
	if err != nil {
		return ThermalResistance{}, err
	}

	roofLayer, err := LayerResistance(roofIns)
	if err != nil {
		return ThermalResistance{}, fmt.Errorf("roof insulation: %w", err)
	}
	wallLayer, err := LayerResistance(wallIns)
	if err != nil {
		return ThermalResistance{}, fmt.Errorf("wall insulation: %w", err)
	}

	roofTotal := InteriorSurfaceResistance + props.baseResistance + roofLayer + ExteriorSurfaceResistance
	wallTotal := InteriorSurfaceResistance + WallBaseResistance + wallLayer + ExteriorSurfaceResistance

	return ThermalResistance{
		RoofLayer: roofLayer,
		WallLayer: wallLayer,
		RoofTotal: roofTotal,
		WallTotal: wallTotal,
		RoofU:     1 / roofTotal,
		WallU:     1 / wallTotal,
	}, nil
}
