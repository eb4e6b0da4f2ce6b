package models

import "time"

// ReportMonth is an immutable snapshot of one month's aggregates. A month key
// has at most one snapshot; saving again for the same month replaces it.
type ReportMonth struct {
	UserID       string             `json:"-"`
	Month        MonthKey           `json:"month"`
	Currency     string             `json:"currency"` // display only
	IncomeTotal  float64            `json:"income_total"`
	ExpenseTotal float64            `json:"expense_total"` // includes BNPL due
	BNPLDue      float64            `json:"bnpl_due"`
	Savings      float64            `json:"savings"` // floored at 0
	Categories   map[string]float64 `json:"categories"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
