package repository

import (
	"database/sql"
	"fmt"

	"github.com/dpavliga/lifeledger/internal/models"
)

// Journal text arrives here already encrypted; the repository never sees
// plaintext.

// CreateJournalEntry inserts a new journal entry
func (r *Repository) CreateJournalEntry(e *models.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (id, user_id, entry_date, mood, text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, e.ID, e.UserID, e.EntryDate, e.Mood, e.Text).
		Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create journal entry: %w", err)
	}
	return nil
}

// ListJournalEntries retrieves all journal entries for a user, newest first
func (r *Repository) ListJournalEntries(userID string) ([]models.JournalEntry, error) {
	query := `
		SELECT id, user_id, entry_date, mood, text, created_at, updated_at
		FROM journal_entries
		WHERE user_id = $1
		ORDER BY entry_date DESC, created_at DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.EntryDate, &e.Mood, &e.Text, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

// FindJournalEntry retrieves one journal entry owned by the user
func (r *Repository) FindJournalEntry(userID, id string) (*models.JournalEntry, error) {
	e := &models.JournalEntry{}
	query := `
		SELECT id, user_id, entry_date, mood, text, created_at, updated_at
		FROM journal_entries
		WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRow(query, id, userID).
		Scan(&e.ID, &e.UserID, &e.EntryDate, &e.Mood, &e.Text, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find journal entry: %w", err)
	}
	return e, nil
}

// UpdateJournalEntry replaces a journal entry by identity
func (r *Repository) UpdateJournalEntry(e *models.JournalEntry) error {
	query := `
		UPDATE journal_entries
		SET entry_date = $3, mood = $4, text = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2`
	res, err := r.db.Exec(query, e.ID, e.UserID, e.EntryDate, e.Mood, e.Text)
	if err != nil {
		return fmt.Errorf("failed to update journal entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update journal entry: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteJournalEntry removes a journal entry owned by the user
func (r *Repository) DeleteJournalEntry(userID, id string) error {
	res, err := r.db.Exec(`DELETE FROM journal_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
