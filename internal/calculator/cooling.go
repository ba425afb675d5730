package calculator

// InsulationFactor is 1 / (1 + β·R) for the roof insulation layer resistance.
func InsulationFactor(roofLayerR float64) float64 {
	return 1 / (1 + InsulationDamping*roofLayerR)
}

// WallFactor is WallInsulationFactor when the wall has an insulation layer.
func WallFactor(wallLayerR float64) float64 {
	if wallLayerR > 0 {
		return WallInsulationFactor
	}
	return 1
}

// ReductionPerArea returns the coating's cooling-load reduction in Btu/ft²/year.
func ReductionPerArea(roofMultiplier float64, thermal ThermalResistance) float64 {
	return BaseReductionBtuPerFt2 *
		roofMultiplier *
		InsulationFactor(thermal.RoofLayer) *
		WallFactor(thermal.WallLayer)
}

// TotalReduction scales a per-area reduction to the whole roof, in Btu/year.
func TotalReduction(areaM2, reductionBtuPerFt2 float64) float64 {
	return areaM2 * SquareFeetPerSquareMeter * reductionBtuPerFt2
}
