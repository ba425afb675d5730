package calculator

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Configuration errors. Compare with errors.Is; callers receive them wrapped
// with the offending value.
var (
	// ErrUnknownRoofType indicates a roof type outside the roof table.
	ErrUnknownRoofType = constError("unknown roof type")

	// ErrUnknownMaterial indicates an insulation material with no conductivity entry.
	ErrUnknownMaterial = constError("unknown insulation material")

	// ErrInvalidThickness indicates an insulation layer whose thickness is not a
	// finite positive number.
	ErrInvalidThickness = constError("insulation thickness must be a finite positive number")

	// ErrNegativeArea indicates a negative or non-finite roof area.
	ErrNegativeArea = constError("roof area must be a finite non-negative number")

	// ErrNonPositiveEER indicates an air-conditioning EER that is not a finite positive number.
	ErrNonPositiveEER = constError("EER must be a finite positive number")

	// ErrNegativePrice indicates a negative or non-finite energy price.
	ErrNegativePrice = constError("energy price must be a finite non-negative number")

	// ErrNegativeEmissionFactor indicates a negative or non-finite grid emission factor.
	ErrNegativeEmissionFactor = constError("emission factor must be a finite non-negative number")

	// ErrUnknownEERBand indicates an EER band name outside the band table.
	ErrUnknownEERBand = constError("unknown EER band")

	// ErrPaybackUndefined is returned when annual cost savings are zero or negative.
	ErrPaybackUndefined = constError("payback undefined: no annual cost savings")

	// ErrNegativeCapex indicates a negative coating investment.
	ErrNegativeCapex = constError("coating cost must not be negative")
)
