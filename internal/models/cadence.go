package models

// Cadence is the recurrence interval of a financial record.
type Cadence string

const (
	CadenceWeekly      Cadence = "weekly"
	CadenceFortnightly Cadence = "fortnightly"
	CadenceMonthly     Cadence = "monthly"
	CadenceQuarterly   Cadence = "quarterly"
	CadenceYearly      Cadence = "yearly"
)

// Allowed cadences per record type. Income pays at most monthly; expenses may
// also recur quarterly or yearly; pay-in-four providers only bill weekly or
// fortnightly.
var (
	IncomeCadences  = []Cadence{CadenceWeekly, CadenceFortnightly, CadenceMonthly}
	ExpenseCadences = []Cadence{CadenceWeekly, CadenceFortnightly, CadenceMonthly, CadenceQuarterly, CadenceYearly}
	BNPLCadences    = []Cadence{CadenceWeekly, CadenceFortnightly}
)

// OneOf reports whether the cadence is a member of the given set.
func (c Cadence) OneOf(set []Cadence) bool {
	for _, s := range set {
		if c == s {
			return true
		}
	}
	return false
}
