package calculator

// Series is the 20-year savings projection. Annual savings are constant, so
// the cumulative value for year n is exactly n times the annual value.
type Series struct {
	Years          []int     `json:"years"`
	EnergyKWh      []float64 `json:"energy_kwh"`
	Cost           []float64 `json:"cost"`
	CumulativeKWh  []float64 `json:"cumulative_kwh"`
	CumulativeCost []float64 `json:"cumulative_cost"`
}

// NewSeries builds a projection of the given length from annual savings.
func NewSeries(years int, annualKWh, annualCost float64) Series {
	if years < 0 {
		years = 0
	}
	s := Series{
		Years:          make([]int, years),
		EnergyKWh:      make([]float64, years),
		Cost:           make([]float64, years),
		CumulativeKWh:  make([]float64, years),
		CumulativeCost: make([]float64, years),
	}
	for i := range years {
		n := float64(i + 1)
		s.Years[i] = i + 1
		s.EnergyKWh[i] = annualKWh
		s.Cost[i] = annualCost
		s.CumulativeKWh[i] = n * annualKWh
		s.CumulativeCost[i] = n * annualCost
	}
	return s
}

// Len returns the number of years in the projection.
func (s Series) Len() int {
	return len(s.Years)
}

// FinalKWh returns the cumulative energy at the end of the horizon.
func (s Series) FinalKWh() float64 {
	if len(s.CumulativeKWh) == 0 {
		return 0
	}
	return s.CumulativeKWh[len(s.CumulativeKWh)-1]
}

// FinalCost returns the cumulative cost savings at the end of the horizon.
func (s Series) FinalCost() float64 {
	if len(s.CumulativeCost) == 0 {
		return 0
	}
	return s.CumulativeCost[len(s.CumulativeCost)-1]
}

// Peak returns the largest cumulative value across both curves.
func (s Series) Peak() float64 {
	return max(s.FinalKWh(), s.FinalCost())
}
