package repository

import (
	"database/sql"
	"fmt"

	"github.com/dpavliga/lifeledger/internal/models"
)

// CreateBNPLPurchase inserts a new pay-in-four purchase
func (r *Repository) CreateBNPLPurchase(p *models.BNPLPurchase) error {
	query := `
		INSERT INTO bnpl_purchases (id, user_id, provider, total, start_date, cadence, payments_left, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, p.ID, p.UserID, p.Provider, p.Total, p.StartDate, p.Cadence, p.PaymentsLeft).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

// ListBNPLPurchases retrieves all purchases for a user
func (r *Repository) ListBNPLPurchases(userID string) ([]models.BNPLPurchase, error) {
	query := `
		SELECT id, user_id, provider, total, start_date, cadence, payments_left, created_at, updated_at
		FROM bnpl_purchases
		WHERE user_id = $1
		ORDER BY start_date, created_at`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []models.BNPLPurchase
	for rows.Next() {
		var p models.BNPLPurchase
		if err := rows.Scan(&p.ID, &p.UserID, &p.Provider, &p.Total, &p.StartDate, &p.Cadence, &p.PaymentsLeft, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, nil
}

// FindBNPLPurchase retrieves one purchase owned by the user
func (r *Repository) FindBNPLPurchase(userID, id string) (*models.BNPLPurchase, error) {
	p := &models.BNPLPurchase{}
	query := `
		SELECT id, user_id, provider, total, start_date, cadence, payments_left, created_at, updated_at
		FROM bnpl_purchases
		WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRow(query, id, userID).
		Scan(&p.ID, &p.UserID, &p.Provider, &p.Total, &p.StartDate, &p.Cadence, &p.PaymentsLeft, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find purchase: %w", err)
	}
	return p, nil
}

// UpdateBNPLPurchase replaces a purchase record by identity
func (r *Repository) UpdateBNPLPurchase(p *models.BNPLPurchase) error {
	query := `
		UPDATE bnpl_purchases
		SET provider = $3, total = $4, start_date = $5, cadence = $6, payments_left = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2`
	res, err := r.db.Exec(query, p.ID, p.UserID, p.Provider, p.Total, p.StartDate, p.Cadence, p.PaymentsLeft)
	if err != nil {
		return fmt.Errorf("failed to update purchase: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update purchase: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBNPLPurchase removes a purchase owned by the user
func (r *Repository) DeleteBNPLPurchase(userID, id string) error {
	res, err := r.db.Exec(`DELETE FROM bnpl_purchases WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
