package models

import "time"

// Goal represents a savings goal
type Goal struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	Target    Amount    `json:"target"`
	Saved     Amount    `json:"saved"`
	Deadline  *Date     `json:"deadline,omitempty"`
	ASAP      bool      `json:"asap"`
	Priority  int       `json:"priority"` // 1 highest .. 3 lowest
	Achieved  bool      `json:"achieved"` // user-toggled, never derived
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
