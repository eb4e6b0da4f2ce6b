package repository

import (
	"database/sql"
	"fmt"

	"github.com/dpavliga/lifeledger/internal/models"
)

// CreateExpense inserts a new expense record
func (r *Repository) CreateExpense(ex *models.Expense) error {
	query := `
		INSERT INTO expenses (id, user_id, name, amount, cadence, category, next_due, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, ex.ID, ex.UserID, ex.Name, ex.Amount, ex.Cadence, ex.Category, ex.NextDue).
		Scan(&ex.CreatedAt, &ex.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// ListExpenses retrieves all expenses for a user
func (r *Repository) ListExpenses(userID string) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, name, amount, cadence, category, next_due, created_at, updated_at
		FROM expenses
		WHERE user_id = $1
		ORDER BY created_at`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var ex models.Expense
		var due models.Date
		if err := rows.Scan(&ex.ID, &ex.UserID, &ex.Name, &ex.Amount, &ex.Cadence, &ex.Category, &due, &ex.CreatedAt, &ex.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if !due.IsZero() {
			ex.NextDue = &due
		}
		expenses = append(expenses, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// FindExpense retrieves one expense owned by the user
func (r *Repository) FindExpense(userID, id string) (*models.Expense, error) {
	ex := &models.Expense{}
	var due models.Date
	query := `
		SELECT id, user_id, name, amount, cadence, category, next_due, created_at, updated_at
		FROM expenses
		WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRow(query, id, userID).
		Scan(&ex.ID, &ex.UserID, &ex.Name, &ex.Amount, &ex.Cadence, &ex.Category, &due, &ex.CreatedAt, &ex.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	if !due.IsZero() {
		ex.NextDue = &due
	}
	return ex, nil
}

// UpdateExpense replaces an expense record by identity
func (r *Repository) UpdateExpense(ex *models.Expense) error {
	query := `
		UPDATE expenses
		SET name = $3, amount = $4, cadence = $5, category = $6, next_due = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2`
	res, err := r.db.Exec(query, ex.ID, ex.UserID, ex.Name, ex.Amount, ex.Cadence, ex.Category, ex.NextDue)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExpense removes an expense owned by the user
func (r *Repository) DeleteExpense(userID, id string) error {
	res, err := r.db.Exec(`DELETE FROM expenses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
