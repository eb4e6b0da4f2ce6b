package models

import "time"

// HealthProfile is the single body-metrics record for a user.
type HealthProfile struct {
	UserID       string    `json:"-"`
	HeightCm     Amount    `json:"height_cm"`
	WeightKg     Amount    `json:"weight_kg"`
	TargetWeight Amount    `json:"target_weight"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Workout represents a scheduled workout session
type Workout struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	Activity    string    `json:"activity"`
	StartAt     time.Time `json:"start_at"`
	DurationMin int       `json:"duration_min"`
	Weekly      bool      `json:"weekly"` // repeats every 7 days when set
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
