// Package engine holds the deterministic computation core: cadence
// normalization, installment scheduling, month aggregation, goal projection,
// report snapshotting and the scorers. Every function is pure; inputs arrive
// as parameters and no state is retained between calls, so the package is safe
// to call from any goroutine.
package engine

import "github.com/dpavliga/lifeledger/internal/models"

// MonthlyEquivalent converts an amount recurring at the given cadence into its
// average-per-calendar-month value. No rounding happens here; rounding is a
// display concern. Unrecognized cadences are rejected at the data-entry
// boundary and are treated as monthly if one slips through.
func MonthlyEquivalent(amount float64, cadence models.Cadence) float64 {
	switch cadence {
	case models.CadenceWeekly:
		return amount * 52.0 / 12.0
	case models.CadenceFortnightly:
		return amount * 26.0 / 12.0
	case models.CadenceQuarterly:
		return amount / 3.0
	case models.CadenceYearly:
		return amount / 12.0
	default:
		return amount
	}
}
