package repository

import (
	"database/sql"
	"fmt"

	"github.com/dpavliga/lifeledger/internal/models"
)

// CreateIncome inserts a new income record
func (r *Repository) CreateIncome(in *models.Income) error {
	query := `
		INSERT INTO incomes (id, user_id, name, amount, cadence, next_date, included, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, in.ID, in.UserID, in.Name, in.Amount, in.Cadence, in.NextDate, in.Included).
		Scan(&in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create income: %w", err)
	}
	return nil
}

// ListIncomes retrieves all incomes for a user
func (r *Repository) ListIncomes(userID string) ([]models.Income, error) {
	query := `
		SELECT id, user_id, name, amount, cadence, next_date, included, created_at, updated_at
		FROM incomes
		WHERE user_id = $1
		ORDER BY created_at`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	defer rows.Close()

	var incomes []models.Income
	for rows.Next() {
		var in models.Income
		if err := rows.Scan(&in.ID, &in.UserID, &in.Name, &in.Amount, &in.Cadence, &in.NextDate, &in.Included, &in.CreatedAt, &in.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan income: %w", err)
		}
		incomes = append(incomes, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	return incomes, nil
}

// FindIncome retrieves one income owned by the user
func (r *Repository) FindIncome(userID, id string) (*models.Income, error) {
	in := &models.Income{}
	query := `
		SELECT id, user_id, name, amount, cadence, next_date, included, created_at, updated_at
		FROM incomes
		WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRow(query, id, userID).
		Scan(&in.ID, &in.UserID, &in.Name, &in.Amount, &in.Cadence, &in.NextDate, &in.Included, &in.CreatedAt, &in.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find income: %w", err)
	}
	return in, nil
}

// UpdateIncome replaces an income record by identity
func (r *Repository) UpdateIncome(in *models.Income) error {
	query := `
		UPDATE incomes
		SET name = $3, amount = $4, cadence = $5, next_date = $6, included = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2`
	res, err := r.db.Exec(query, in.ID, in.UserID, in.Name, in.Amount, in.Cadence, in.NextDate, in.Included)
	if err != nil {
		return fmt.Errorf("failed to update income: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update income: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteIncome removes an income owned by the user
func (r *Repository) DeleteIncome(userID, id string) error {
	res, err := r.db.Exec(`DELETE FROM incomes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
