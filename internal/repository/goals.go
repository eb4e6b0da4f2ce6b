package repository

import (
	"database/sql"
	"fmt"

	"github.com/dpavliga/lifeledger/internal/models"
)

// CreateGoal inserts a new savings goal
func (r *Repository) CreateGoal(g *models.Goal) error {
	query := `
		INSERT INTO goals (id, user_id, title, target, saved, deadline, asap, priority, achieved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, g.ID, g.UserID, g.Title, g.Target, g.Saved, g.Deadline, g.ASAP, g.Priority, g.Achieved).
		Scan(&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// ListGoals retrieves all goals for a user, highest priority first
func (r *Repository) ListGoals(userID string) ([]models.Goal, error) {
	query := `
		SELECT id, user_id, title, target, saved, deadline, asap, priority, achieved, created_at, updated_at
		FROM goals
		WHERE user_id = $1
		ORDER BY priority, created_at`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		var deadline models.Date
		if err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.Target, &g.Saved, &deadline, &g.ASAP, &g.Priority, &g.Achieved, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		if !deadline.IsZero() {
			g.Deadline = &deadline
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// FindGoal retrieves one goal owned by the user
func (r *Repository) FindGoal(userID, id string) (*models.Goal, error) {
	g := &models.Goal{}
	var deadline models.Date
	query := `
		SELECT id, user_id, title, target, saved, deadline, asap, priority, achieved, created_at, updated_at
		FROM goals
		WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRow(query, id, userID).
		Scan(&g.ID, &g.UserID, &g.Title, &g.Target, &g.Saved, &deadline, &g.ASAP, &g.Priority, &g.Achieved, &g.CreatedAt, &g.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	if !deadline.IsZero() {
		g.Deadline = &deadline
	}
	return g, nil
}

// UpdateGoal replaces a goal record by identity
func (r *Repository) UpdateGoal(g *models.Goal) error {
	query := `
		UPDATE goals
		SET title = $3, target = $4, saved = $5, deadline = $6, asap = $7, priority = $8, achieved = $9, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2`
	res, err := r.db.Exec(query, g.ID, g.UserID, g.Title, g.Target, g.Saved, g.Deadline, g.ASAP, g.Priority, g.Achieved)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteGoal removes a goal owned by the user
func (r *Repository) DeleteGoal(userID, id string) error {
	res, err := r.db.Exec(`DELETE FROM goals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
