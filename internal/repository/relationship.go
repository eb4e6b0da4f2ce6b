package repository

import (
	"database/sql"
	"fmt"

	"github.com/dpavliga/lifeledger/internal/models"
)

// SaveRelationship upserts the single relationship record for a user
func (r *Repository) SaveRelationship(d *models.RelationshipData) error {
	query := `
		INSERT INTO relationship_profiles (
			user_id, partner_name, years_together,
			communication, trust_safety, conflict_resolution, financial_habits,
			values_alignment, kids_alignment, work_reliability, growth_mindset,
			emotional_support, future_plans,
			addictions, controlling, financial_abuse,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id) DO UPDATE SET
			partner_name = EXCLUDED.partner_name,
			years_together = EXCLUDED.years_together,
			communication = EXCLUDED.communication,
			trust_safety = EXCLUDED.trust_safety,
			conflict_resolution = EXCLUDED.conflict_resolution,
			financial_habits = EXCLUDED.financial_habits,
			values_alignment = EXCLUDED.values_alignment,
			kids_alignment = EXCLUDED.kids_alignment,
			work_reliability = EXCLUDED.work_reliability,
			growth_mindset = EXCLUDED.growth_mindset,
			emotional_support = EXCLUDED.emotional_support,
			future_plans = EXCLUDED.future_plans,
			addictions = EXCLUDED.addictions,
			controlling = EXCLUDED.controlling,
			financial_abuse = EXCLUDED.financial_abuse,
			updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query,
		d.UserID, d.PartnerName, d.YearsTogether,
		d.Communication, d.TrustSafety, d.ConflictResolution, d.FinancialHabits,
		d.ValuesAlignment, d.KidsAlignment, d.WorkReliability, d.GrowthMindset,
		d.EmotionalSupport, d.FuturePlans,
		d.Addictions, d.Controlling, d.FinancialAbuse).
		Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save relationship: %w", err)
	}
	return nil
}

// FindRelationship retrieves the relationship record for a user
func (r *Repository) FindRelationship(userID string) (*models.RelationshipData, error) {
	d := &models.RelationshipData{}
	query := `
		SELECT user_id, partner_name, years_together,
			communication, trust_safety, conflict_resolution, financial_habits,
			values_alignment, kids_alignment, work_reliability, growth_mindset,
			emotional_support, future_plans,
			addictions, controlling, financial_abuse,
			created_at, updated_at
		FROM relationship_profiles
		WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(
		&d.UserID, &d.PartnerName, &d.YearsTogether,
		&d.Communication, &d.TrustSafety, &d.ConflictResolution, &d.FinancialHabits,
		&d.ValuesAlignment, &d.KidsAlignment, &d.WorkReliability, &d.GrowthMindset,
		&d.EmotionalSupport, &d.FuturePlans,
		&d.Addictions, &d.Controlling, &d.FinancialAbuse,
		&d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find relationship: %w", err)
	}
	return d, nil
}
