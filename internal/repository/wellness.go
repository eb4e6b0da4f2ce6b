package repository

import (
	"database/sql"
	"fmt"

	"github.com/dpavliga/lifeledger/internal/models"
)

// SaveHealthProfile upserts the single body-metrics record for a user
func (r *Repository) SaveHealthProfile(h *models.HealthProfile) error {
	query := `
		INSERT INTO health_profiles (user_id, height_cm, weight_kg, target_weight, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id) DO UPDATE SET
			height_cm = EXCLUDED.height_cm,
			weight_kg = EXCLUDED.weight_kg,
			target_weight = EXCLUDED.target_weight,
			notes = EXCLUDED.notes,
			updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, h.UserID, h.HeightCm, h.WeightKg, h.TargetWeight, h.Notes).
		Scan(&h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save health profile: %w", err)
	}
	return nil
}

// FindHealthProfile retrieves the body-metrics record for a user
func (r *Repository) FindHealthProfile(userID string) (*models.HealthProfile, error) {
	h := &models.HealthProfile{}
	query := `
		SELECT user_id, height_cm, weight_kg, target_weight, notes, created_at, updated_at
		FROM health_profiles
		WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).
		Scan(&h.UserID, &h.HeightCm, &h.WeightKg, &h.TargetWeight, &h.Notes, &h.CreatedAt, &h.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find health profile: %w", err)
	}
	return h, nil
}

// CreateWorkout inserts a new workout session
func (r *Repository) CreateWorkout(w *models.Workout) error {
	query := `
		INSERT INTO workouts (id, user_id, activity, start_at, duration_min, weekly, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, w.ID, w.UserID, w.Activity, w.StartAt, w.DurationMin, w.Weekly).
		Scan(&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create workout: %w", err)
	}
	return nil
}

// ListWorkouts retrieves all workouts for a user
func (r *Repository) ListWorkouts(userID string) ([]models.Workout, error) {
	query := `
		SELECT id, user_id, activity, start_at, duration_min, weekly, created_at, updated_at
		FROM workouts
		WHERE user_id = $1
		ORDER BY start_at`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Activity, &w.StartAt, &w.DurationMin, &w.Weekly, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	return workouts, nil
}

// UpdateWorkout replaces a workout record by identity
func (r *Repository) UpdateWorkout(w *models.Workout) error {
	query := `
		UPDATE workouts
		SET activity = $3, start_at = $4, duration_min = $5, weekly = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2`
	res, err := r.db.Exec(query, w.ID, w.UserID, w.Activity, w.StartAt, w.DurationMin, w.Weekly)
	if err != nil {
		return fmt.Errorf("failed to update workout: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update workout: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteWorkout removes a workout owned by the user
func (r *Repository) DeleteWorkout(userID, id string) error {
	res, err := r.db.Exec(`DELETE FROM workouts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
