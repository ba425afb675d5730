package calculator

import "fmt"

// Payback is a simple payback estimate for the coating investment.
type Payback struct {
	Capex      float64 `json:"capex"`
	AnnualCost float64 `json:"annual_cost_saved"`
	Years      float64 `json:"years"`
	// Defined is false when there are no annual savings to recover the capex from.
	Defined bool `json:"defined"`
}

// Capex returns the coating investment for a unit cost per m² and an area.
func Capex(unitCost, areaM2 float64) float64 {
	return unitCost * areaM2
}

// ComputePayback returns capex / annual cost savings. When annual savings are
// zero or negative it returns an undefined Payback and ErrPaybackUndefined.
func ComputePayback(capex, annualCost float64) (Payback, error) {
	if capex < 0 {
		return Payback{}, fmt.Errorf("%w: %v", ErrNegativeCapex, capex)
	}
	p := Payback{Capex: capex, AnnualCost: annualCost}
	if !(annualCost > 0) {
		return p, ErrPaybackUndefined
	}
	p.Years = capex / annualCost
	p.Defined = true
	return p, nil
}

// String renders the payback for messages and tables.
func (p Payback) String() string {
	if !p.Defined {
		return "undefined"
	}
	return fmt.Sprintf("%.1f years", p.Years)
}
