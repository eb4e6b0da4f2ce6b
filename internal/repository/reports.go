package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dpavliga/lifeledger/internal/models"
)

// SaveReportMonth upserts a month snapshot. The (user, month) pair is unique,
// so saving a month that already has a snapshot replaces it.
func (r *Repository) SaveReportMonth(rep *models.ReportMonth) error {
	cats, err := json.Marshal(rep.Categories)
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}
	query := `
		INSERT INTO report_months (user_id, month, currency, income_total, expense_total, bnpl_due, savings, categories, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, month) DO UPDATE SET
			currency = EXCLUDED.currency,
			income_total = EXCLUDED.income_total,
			expense_total = EXCLUDED.expense_total,
			bnpl_due = EXCLUDED.bnpl_due,
			savings = EXCLUDED.savings,
			categories = EXCLUDED.categories,
			updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at`
	err = r.db.QueryRow(query, rep.UserID, rep.Month, rep.Currency, rep.IncomeTotal, rep.ExpenseTotal, rep.BNPLDue, rep.Savings, cats).
		Scan(&rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// ListReportMonths retrieves a user's report history in month order
func (r *Repository) ListReportMonths(userID string) ([]models.ReportMonth, error) {
	query := `
		SELECT user_id, month, currency, income_total, expense_total, bnpl_due, savings, categories, created_at, updated_at
		FROM report_months
		WHERE user_id = $1
		ORDER BY month`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []models.ReportMonth
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// FindReportMonth retrieves one month's snapshot for a user
func (r *Repository) FindReportMonth(userID string, month models.MonthKey) (*models.ReportMonth, error) {
	query := `
		SELECT user_id, month, currency, income_total, expense_total, bnpl_due, savings, categories, created_at, updated_at
		FROM report_months
		WHERE user_id = $1 AND month = $2`
	rep, err := scanReport(r.db.QueryRow(query, userID, month))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rep, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReport(row rowScanner) (*models.ReportMonth, error) {
	rep := &models.ReportMonth{}
	var cats []byte
	err := row.Scan(&rep.UserID, &rep.Month, &rep.Currency, &rep.IncomeTotal, &rep.ExpenseTotal, &rep.BNPLDue, &rep.Savings, &cats, &rep.CreatedAt, &rep.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan report: %w", err)
	}
	rep.Categories = map[string]float64{}
	if len(cats) > 0 {
		if err := json.Unmarshal(cats, &rep.Categories); err != nil {
			return nil, fmt.Errorf("failed to decode categories: %w", err)
		}
	}
	return rep, nil
}
