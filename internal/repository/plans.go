package repository

import (
	"database/sql"
	"fmt"

	"github.com/dpavliga/lifeledger/internal/models"
)

// SaveBabyPlan upserts the single baby-planning record for a user
func (r *Repository) SaveBabyPlan(p *models.BabyPlan) error {
	query := `
		INSERT INTO baby_plans (user_id, planning, target_fund, saved, monthly_save, target_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id) DO UPDATE SET
			planning = EXCLUDED.planning,
			target_fund = EXCLUDED.target_fund,
			saved = EXCLUDED.saved,
			monthly_save = EXCLUDED.monthly_save,
			target_date = EXCLUDED.target_date,
			updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, p.UserID, p.Planning, p.TargetFund, p.Saved, p.MonthlySave, p.TargetDate).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save baby plan: %w", err)
	}
	return nil
}

// FindBabyPlan retrieves the baby-planning record for a user
func (r *Repository) FindBabyPlan(userID string) (*models.BabyPlan, error) {
	p := &models.BabyPlan{}
	var target models.Date
	query := `
		SELECT user_id, planning, target_fund, saved, monthly_save, target_date, created_at, updated_at
		FROM baby_plans
		WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).
		Scan(&p.UserID, &p.Planning, &p.TargetFund, &p.Saved, &p.MonthlySave, &target, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find baby plan: %w", err)
	}
	if !target.IsZero() {
		p.TargetDate = &target
	}
	return p, nil
}

// SaveImmigrationPlan upserts the single visa-savings record for a user
func (r *Repository) SaveImmigrationPlan(p *models.ImmigrationPlan) error {
	query := `
		INSERT INTO immigration_plans (user_id, country, visa_type, target_amount, saved, monthly_save, home_currency, target_currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id) DO UPDATE SET
			country = EXCLUDED.country,
			visa_type = EXCLUDED.visa_type,
			target_amount = EXCLUDED.target_amount,
			saved = EXCLUDED.saved,
			monthly_save = EXCLUDED.monthly_save,
			home_currency = EXCLUDED.home_currency,
			target_currency = EXCLUDED.target_currency,
			updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, p.UserID, p.Country, p.VisaType, p.TargetAmount, p.Saved, p.MonthlySave, p.HomeCurrency, p.TargetCurrency).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save immigration plan: %w", err)
	}
	return nil
}

// FindImmigrationPlan retrieves the visa-savings record for a user
func (r *Repository) FindImmigrationPlan(userID string) (*models.ImmigrationPlan, error) {
	p := &models.ImmigrationPlan{}
	query := `
		SELECT user_id, country, visa_type, target_amount, saved, monthly_save, home_currency, target_currency, created_at, updated_at
		FROM immigration_plans
		WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).
		Scan(&p.UserID, &p.Country, &p.VisaType, &p.TargetAmount, &p.Saved, &p.MonthlySave, &p.HomeCurrency, &p.TargetCurrency, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find immigration plan: %w", err)
	}
	return p, nil
}
