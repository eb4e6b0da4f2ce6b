package models

import "time"

// Income represents a recurring income source
type Income struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	Amount    Amount    `json:"amount"`
	Cadence   Cadence   `json:"cadence"`
	NextDate  Date      `json:"next_date"`
	Included  *bool     `json:"included,omitempty"` // nil means included
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsIncluded reports whether the income counts toward totals. A missing flag
// defaults to included.
func (i Income) IsIncluded() bool {
	return i.Included == nil || *i.Included
}
