package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dpavliga/lifeledger/internal/models"
	"github.com/dpavliga/lifeledger/internal/utils"
)

// SaveRelationship stores the relationship check-in, replacing any previous
// one
func (s *Service) SaveRelationship(ctx context.Context, d *models.RelationshipData) (*models.RelationshipData, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	d.UserID = userID
	d.PartnerName = strings.TrimSpace(d.PartnerName)
	if d.YearsTogether < 0 {
		d.YearsTogether = 0
	}
	d.Addictions = normalizeChoice(d.Addictions, models.AddictionNone, models.AddictionPast, models.AddictionActive)
	d.Controlling = normalizeChoice(d.Controlling, models.AnswerNo, models.AnswerYes)
	d.FinancialAbuse = normalizeChoice(d.FinancialAbuse, models.AnswerNo, models.AnswerYes)
	if err := s.store.SaveRelationship(d); err != nil {
		return nil, err
	}
	s.log.Infof("Relationship check-in saved for user %s", userID)
	return d, nil
}

// Relationship returns the stored relationship check-in
func (s *Service) Relationship(ctx context.Context) (*models.RelationshipData, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.FindRelationship(userID)
}

// normalizeChoice lowercases a categorical answer and falls back to the first
// option, the safe default, when it is not in the set.
func normalizeChoice(v string, options ...string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, opt := range options {
		if v == opt {
			return v
		}
	}
	return options[0]
}

// SaveHealthProfile stores the body-metrics record, replacing any previous
// one
func (s *Service) SaveHealthProfile(ctx context.Context, h *models.HealthProfile) (*models.HealthProfile, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	h.UserID = userID
	if h.HeightCm < 0 {
		h.HeightCm = 0
	}
	if h.WeightKg < 0 {
		h.WeightKg = 0
	}
	if h.TargetWeight < 0 {
		h.TargetWeight = 0
	}
	if err := s.store.SaveHealthProfile(h); err != nil {
		return nil, err
	}
	return h, nil
}

// HealthProfile returns the stored body-metrics record
func (s *Service) HealthProfile(ctx context.Context) (*models.HealthProfile, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.FindHealthProfile(userID)
}

// CreateWorkout validates and stores a workout session
func (s *Service) CreateWorkout(ctx context.Context, w *models.Workout) (*models.Workout, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := sanitizeWorkout(w); err != nil {
		return nil, err
	}
	w.ID = uuid.NewString()
	w.UserID = userID
	if err := s.store.CreateWorkout(w); err != nil {
		return nil, err
	}
	return w, nil
}

// ListWorkouts returns all workout sessions for the authenticated user
func (s *Service) ListWorkouts(ctx context.Context) ([]models.Workout, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.ListWorkouts(userID)
}

// UpdateWorkout replaces a workout session by identity
func (s *Service) UpdateWorkout(ctx context.Context, id string, w *models.Workout) (*models.Workout, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := sanitizeWorkout(w); err != nil {
		return nil, err
	}
	w.ID = id
	w.UserID = userID
	if err := s.store.UpdateWorkout(w); err != nil {
		return nil, err
	}
	return w, nil
}

// DeleteWorkout removes a workout session
func (s *Service) DeleteWorkout(ctx context.Context, id string) error {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return err
	}
	return s.store.DeleteWorkout(userID, id)
}

func sanitizeWorkout(w *models.Workout) error {
	w.Activity = strings.TrimSpace(w.Activity)
	if w.Activity == "" {
		return fmt.Errorf("activity is required: %w", ErrInvalidInput)
	}
	if w.StartAt.IsZero() {
		return fmt.Errorf("start time is required: %w", ErrInvalidInput)
	}
	if w.DurationMin < 0 {
		w.DurationMin = 0
	}
	return nil
}

// CreateJournalEntry encrypts the text and stores a new journal entry
func (s *Service) CreateJournalEntry(ctx context.Context, e *models.JournalEntry) (*models.JournalEntry, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := sanitizeJournalEntry(e); err != nil {
		return nil, err
	}
	plaintext := e.Text
	if err := s.encryptEntry(e); err != nil {
		return nil, err
	}
	e.ID = uuid.NewString()
	e.UserID = userID
	if err := s.store.CreateJournalEntry(e); err != nil {
		return nil, err
	}
	e.Text = plaintext
	return e, nil
}

// ListJournalEntries returns all journal entries with decrypted text
func (s *Service) ListJournalEntries(ctx context.Context) ([]models.JournalEntry, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.store.ListJournalEntries(userID)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if err := s.decryptEntry(&entries[i]); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// UpdateJournalEntry re-encrypts the text and replaces an entry by identity
func (s *Service) UpdateJournalEntry(ctx context.Context, id string, e *models.JournalEntry) (*models.JournalEntry, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := sanitizeJournalEntry(e); err != nil {
		return nil, err
	}
	plaintext := e.Text
	if err := s.encryptEntry(e); err != nil {
		return nil, err
	}
	e.ID = id
	e.UserID = userID
	if err := s.store.UpdateJournalEntry(e); err != nil {
		return nil, err
	}
	e.Text = plaintext
	return e, nil
}

// DeleteJournalEntry removes a journal entry
func (s *Service) DeleteJournalEntry(ctx context.Context, id string) error {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return err
	}
	return s.store.DeleteJournalEntry(userID, id)
}

func sanitizeJournalEntry(e *models.JournalEntry) error {
	if e.EntryDate.IsZero() {
		return fmt.Errorf("entry date is required: %w", ErrInvalidInput)
	}
	if e.Mood < 0 {
		e.Mood = 0
	}
	if e.Mood > 5 {
		e.Mood = 5
	}
	return nil
}

func (s *Service) encryptEntry(e *models.JournalEntry) error {
	if e.Text == "" {
		return nil
	}
	key, err := s.encryptionKey()
	if err != nil {
		return err
	}
	ciphertext, err := utils.Encrypt(e.Text, key)
	if err != nil {
		return fmt.Errorf("failed to encrypt journal text: %w", err)
	}
	e.Text = ciphertext
	return nil
}

func (s *Service) decryptEntry(e *models.JournalEntry) error {
	if e.Text == "" {
		return nil
	}
	key, err := s.encryptionKey()
	if err != nil {
		return err
	}
	plaintext, err := utils.Decrypt(e.Text, key)
	if err != nil {
		return fmt.Errorf("failed to decrypt journal text: %w", err)
	}
	e.Text = plaintext
	return nil
}

func (s *Service) encryptionKey() ([]byte, error) {
	key, err := hex.DecodeString(s.config.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("invalid encryption key: %w", err)
	}
	return key, nil
}

// SaveBabyPlan stores the baby-planning record, replacing any previous one
func (s *Service) SaveBabyPlan(ctx context.Context, p *models.BabyPlan) (*models.BabyPlan, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	p.UserID = userID
	if p.TargetFund < 0 {
		p.TargetFund = 0
	}
	if p.Saved < 0 {
		p.Saved = 0
	}
	if p.MonthlySave < 0 {
		p.MonthlySave = 0
	}
	if p.TargetDate != nil && p.TargetDate.IsZero() {
		p.TargetDate = nil
	}
	if err := s.store.SaveBabyPlan(p); err != nil {
		return nil, err
	}
	return p, nil
}

// BabyPlan returns the stored baby-planning record
func (s *Service) BabyPlan(ctx context.Context) (*models.BabyPlan, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.FindBabyPlan(userID)
}

// SaveImmigrationPlan stores the visa-savings record, replacing any previous
// one
func (s *Service) SaveImmigrationPlan(ctx context.Context, p *models.ImmigrationPlan) (*models.ImmigrationPlan, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	p.UserID = userID
	p.Country = strings.TrimSpace(p.Country)
	p.VisaType = strings.TrimSpace(p.VisaType)
	if p.TargetAmount < 0 {
		p.TargetAmount = 0
	}
	if p.Saved < 0 {
		p.Saved = 0
	}
	if p.MonthlySave < 0 {
		p.MonthlySave = 0
	}
	p.HomeCurrency = normalizeCurrency(p.HomeCurrency, s.config.DefaultCurrency)
	p.TargetCurrency = normalizeCurrency(p.TargetCurrency, "EUR")
	if err := s.store.SaveImmigrationPlan(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ImmigrationPlan returns the stored visa-savings record
func (s *Service) ImmigrationPlan(ctx context.Context) (*models.ImmigrationPlan, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.FindImmigrationPlan(userID)
}

func normalizeCurrency(code, fallback string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return fallback
	}
	return code
}
