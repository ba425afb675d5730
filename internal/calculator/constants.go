package calculator

// Surface and structural thermal resistances (m²K/W).
const (
	// InteriorSurfaceResistance is Rsi for a horizontal heat flow surface.
	InteriorSurfaceResistance = 0.10

	// ExteriorSurfaceResistance is Rse.
	ExteriorSurfaceResistance = 0.04

	// WallBaseResistance is the structural resistance of the uninsulated wall.
	WallBaseResistance = 0.45
)

// Insulation material conductivities (W/mK).
const (
	PolystyreneConductivity  = 0.034
	PolyurethaneConductivity = 0.025
)

// Cooling model constants.
const (
	// BaseReductionBtuPerFt2 is the empirical cooling-load reduction of the
	// coating on an uninsulated metal roof, per square foot per year.
	BaseReductionBtuPerFt2 = 5833.0

	// InsulationDamping is β in 1 / (1 + β·R): thicker roof insulation leaves
	// less heat for the coating to reject.
	InsulationDamping = 0.12

	// WallInsulationFactor applies whenever the wall carries any insulation
	// layer, regardless of its thickness or material.
	WallInsulationFactor = 0.98

	// SquareFeetPerSquareMeter converts roof area to the empirical constant's unit.
	SquareFeetPerSquareMeter = 10.7639

	// JoulesPerBtu converts heat units to joules.
	JoulesPerBtu = 1055.06

	// joulesPerGigajoule scales joules to GJ.
	joulesPerGigajoule = 1e9

	// wattHoursPerKilowattHour converts EER (Btu/Wh) to Btu/kWh.
	wattHoursPerKilowattHour = 1000.0

	// kgPerTonne converts kilograms of CO2 to tonnes.
	kgPerTonne = 1000.0
)

// Coating properties. They are reported alongside results and do not enter
// the numeric model.
const (
	CoatingSolarReflectance = 0.88
	CoatingEmissivity       = 0.904
	CoatingSRI              = 111
)

// SeriesYears is the horizon of the cumulative savings series.
const SeriesYears = 20

// DefaultUnitCost is the default coating cost per m² used for payback.
const DefaultUnitCost = 50.0

// Default economic inputs.
const (
	DefaultEnergyPrice    = 0.85
	DefaultEmissionFactor = 0.77
	DefaultAreaM2         = 1000.0
)
