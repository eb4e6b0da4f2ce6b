package models

import "time"

// MonthSummary represents one month's aggregated view of the record sets.
// Income and expense totals are cadence-normalized monthly equivalents and are
// not month-filtered; only BNPL installments are date-filtered into the month.
type MonthSummary struct {
	Month      MonthKey           `json:"month"`
	Income     float64            `json:"income"`
	Expense    float64            `json:"expense"`
	ByCategory map[string]float64 `json:"by_category"`
	BNPLDue    float64            `json:"bnpl_due"`
}

// Net returns the unfloored monthly balance: income minus expenses and BNPL
// installments due.
func (s MonthSummary) Net() float64 {
	return s.Income - s.Expense - s.BNPLDue
}

// GoalProjection is the estimated completion of a savings target. When the
// goal is already met or the savings rate is zero or negative there is no ETA
// and Determinate is false.
type GoalProjection struct {
	Determinate  bool     `json:"determinate"`
	MonthsNeeded int      `json:"months_needed,omitempty"`
	ETA          MonthKey `json:"eta,omitempty"`
}

// GoalOutlook pairs a goal with either its projection (ASAP mode) or its
// stored deadline (deadline mode).
type GoalOutlook struct {
	Goal       Goal            `json:"goal"`
	Mode       string          `json:"mode"` // "asap" or "deadline"
	Deadline   *Date           `json:"deadline,omitempty"`
	Projection *GoalProjection `json:"projection,omitempty"`
}

// Risk bands for the relationship score.
const (
	BandHealthy   = "healthy"
	BandNeedsWork = "needs-work"
	BandHighRisk  = "high-risk"
)

// RelationshipAssessment is the scored result of a relationship check-in.
type RelationshipAssessment struct {
	Score       int      `json:"score"` // 0-100
	Band        string   `json:"band"`
	RedFlags    []string `json:"red_flags"`
	Suggestions []string `json:"suggestions"`
}

// Advice severities.
const (
	AdviceInfo  = "info"
	AdviceWarn  = "warn"
	AdviceAlert = "alert"
)

// Advice is one rule-based advisor finding.
type Advice struct {
	Severity string `json:"severity"`
	Topic    string `json:"topic"`
	Message  string `json:"message"`
}

// BMIResult represents a computed body mass index and its band.
type BMIResult struct {
	BMI  float64 `json:"bmi"`
	Band string  `json:"band"`
}

// Calendar event kinds, one per exported block type.
const (
	EventPayday      = "payday"
	EventBill        = "bill"
	EventInstallment = "installment"
	EventWorkout     = "workout"
)

// CalendarEvent is a dated (amount, label) tuple handed to the calendar
// exporter. The engine knows nothing about the exported file format.
type CalendarEvent struct {
	Date     time.Time `json:"date"`
	Label    string    `json:"label"`
	Amount   float64   `json:"amount,omitempty"`
	Kind     string    `json:"kind"`
	AllDay   bool      `json:"all_day"`
	Duration int       `json:"duration_min,omitempty"`
}
