package greenops

// Equivalence factors. Each equivalency is the saved quantity divided by its
// factor:
//
//	equivalency = saved / factor
const (
	// KgCO2PerTreeYear is the CO2 absorbed by one mature tree in a year.
	KgCO2PerTreeYear = 22.0

	// KgCO2PerCarKm is the CO2 emitted per kilometre by an average passenger car.
	KgCO2PerCarKm = 0.2

	// KWhPerHouseholdYear is the yearly electricity use of an average household.
	KWhPerHouseholdYear = 2000.0

	// KWhPerBulbYear is the yearly consumption of one LED bulb lit for a year.
	KWhPerBulbYear = 10.0
)

// Display thresholds.
const (
	// LargeNumberThreshold is where abbreviated "~X.X million" display starts.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold is where billion-scale display starts.
	BillionThreshold = 1_000_000_000
)
