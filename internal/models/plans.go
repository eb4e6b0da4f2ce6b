package models

import "time"

// BabyPlan is the single baby-planning record for a user: a target fund with
// a steady monthly contribution.
type BabyPlan struct {
	UserID      string    `json:"-"`
	Planning    bool      `json:"planning"`
	TargetFund  Amount    `json:"target_fund"`
	Saved       Amount    `json:"saved"`
	MonthlySave Amount    `json:"monthly_save"`
	TargetDate  *Date     `json:"target_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ImmigrationPlan is the single visa-savings record for a user. The
// destination currency is display-only; all arithmetic stays in the home
// currency.
type ImmigrationPlan struct {
	UserID         string    `json:"-"`
	Country        string    `json:"country"`
	VisaType       string    `json:"visa_type"`
	TargetAmount   Amount    `json:"target_amount"`
	Saved          Amount    `json:"saved"`
	MonthlySave    Amount    `json:"monthly_save"`
	HomeCurrency   string    `json:"home_currency"`
	TargetCurrency string    `json:"target_currency"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
