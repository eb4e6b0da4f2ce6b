package models

import "time"

// Expense represents a recurring expense
type Expense struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	Amount    Amount    `json:"amount"`
	Cadence   Cadence   `json:"cadence"`
	Category  string    `json:"category"`
	NextDue   *Date     `json:"next_due,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
