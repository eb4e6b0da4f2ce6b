package models

import "time"

// MaxInstallments is the fixed pay-in-four structure every BNPL purchase
// divides into, regardless of how many payments remain.
const MaxInstallments = 4

// BNPLPurchase represents a buy-now-pay-later purchase
type BNPLPurchase struct {
	ID           string    `json:"id"`
	UserID       string    `json:"-"`
	Provider     string    `json:"provider"`
	Total        Amount    `json:"total"`
	StartDate    Date      `json:"start_date"`
	Cadence      Cadence   `json:"cadence"`
	PaymentsLeft int       `json:"payments_left"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Installment is one scheduled payment within a purchase's pay-in-four plan.
// Installments are recomputed from the purchase on demand, never persisted.
type Installment struct {
	Due    Date    `json:"due"`
	Amount float64 `json:"amount"`
}
