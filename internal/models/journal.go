package models

import "time"

// JournalEntry represents a dated journal note. The text is encrypted at rest;
// the repository stores and returns ciphertext, the service layer translates.
type JournalEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	EntryDate Date      `json:"entry_date"`
	Mood      Rating    `json:"mood"` // 1 low .. 5 high
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
