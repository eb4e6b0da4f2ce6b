package service

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpavliga/lifeledger/internal/config"
	"github.com/dpavliga/lifeledger/internal/models"
)

type fakeMailer struct {
	reports   []*models.ReportMonth
	reminders [][]models.CalendarEvent
}

func (m *fakeMailer) SendMonthlyReport(to string, report *models.ReportMonth) error {
	m.reports = append(m.reports, report)
	return nil
}

func (m *fakeMailer) SendInstallmentReminder(to string, events []models.CalendarEvent) error {
	m.reminders = append(m.reminders, events)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		EncryptionKey:   "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6",
		DefaultCurrency: "USD",
	}
}

func newTestService(t *testing.T) (*Service, *fakeStore, *fakeMailer) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	store := newFakeStore()
	mailer := &fakeMailer{}
	return NewService(store, log, testConfig(), mailer), store, mailer
}

func registerUser(t *testing.T, svc *Service) (context.Context, *models.User) {
	t.Helper()
	user, err := svc.Register("dina", "dina@example.com", "hunter22")
	require.NoError(t, err)
	return context.WithValue(context.Background(), "userID", user.ID), user
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _ := newTestService(t)

	user, err := svc.Register("dina", "Dina@Example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "dina@example.com", user.Email)
	assert.Equal(t, "USD", user.Currency)
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	token, err := svc.Login("dina@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login("dina@example.com", "wrong")
	assert.Error(t, err)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Register("x", "not-an-email", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register("x", "x@example.com", "short")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCurrentUser(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx, user := registerUser(t, svc)

	got, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.CurrentUser(context.Background())
	assert.Error(t, err)
}

func TestCreateIncomeCoercion(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx, _ := registerUser(t, svc)

	created, err := svc.CreateIncome(ctx, &models.Income{
		Name:    "Salary",
		Amount:  -500,
		Cadence: models.CadenceMonthly,
	})
	require.NoError(t, err)
	assert.Equal(t, models.Amount(0), created.Amount, "negative amount is coerced to zero")
	assert.NotEmpty(t, created.ID)

	stored := store.incomes[created.ID]
	require.NotNil(t, stored)
	assert.Equal(t, models.Amount(0), stored.Amount)
}

func TestCreateIncomeRejectsUnknownCadence(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx, _ := registerUser(t, svc)

	_, err := svc.CreateIncome(ctx, &models.Income{
		Name:    "Salary",
		Amount:  100,
		Cadence: "daily",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// yearly is valid for expenses but not for income
	_, err = svc.CreateIncome(ctx, &models.Income{
		Name:    "Bonus",
		Amount:  100,
		Cadence: models.CadenceYearly,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPurchaseClamping(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx, _ := registerUser(t, svc)

	created, err := svc.CreateBNPLPurchase(ctx, &models.BNPLPurchase{
		Provider:     "afterpay",
		Total:        100,
		StartDate:    models.NewDate(2026, 9, 1),
		Cadence:      models.CadenceFortnightly,
		PaymentsLeft: 9,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, created.PaymentsLeft)

	created, err = svc.CreateBNPLPurchase(ctx, &models.BNPLPurchase{
		Provider:     "klarna",
		Total:        100,
		StartDate:    models.NewDate(2026, 9, 1),
		Cadence:      models.CadenceWeekly,
		PaymentsLeft: -2,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, created.PaymentsLeft)
}

func TestGoalPriorityDefaultsAndClamps(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx, _ := registerUser(t, svc)

	created, err := svc.CreateGoal(ctx, &models.Goal{Title: "Car", Target: 5000})
	require.NoError(t, err)
	assert.Equal(t, 2, created.Priority, "unset priority defaults to medium")

	created, err = svc.CreateGoal(ctx, &models.Goal{Title: "House", Target: 5000, Priority: 7})
	require.NoError(t, err)
	assert.Equal(t, 3, created.Priority)
}

func TestJournalEncryptionRoundTrip(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx, _ := registerUser(t, svc)

	created, err := svc.CreateJournalEntry(ctx, &models.JournalEntry{
		EntryDate: models.NewDate(2026, 8, 30),
		Mood:      4,
		Text:      "rough week, but the budget held",
	})
	require.NoError(t, err)
	assert.Equal(t, "rough week, but the budget held", created.Text, "caller gets plaintext back")

	stored := store.journal[created.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, created.Text, stored.Text, "text is encrypted at rest")
	assert.NotEmpty(t, stored.Text)

	entries, err := svc.ListJournalEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "rough week, but the budget held", entries[0].Text)
}

func TestRelationshipChoiceNormalization(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx, _ := registerUser(t, svc)

	saved, err := svc.SaveRelationship(ctx, &models.RelationshipData{
		PartnerName:    "  Sam ",
		Addictions:     "ACTIVE",
		Controlling:    "maybe",
		FinancialAbuse: "",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sam", saved.PartnerName)
	assert.Equal(t, models.AddictionActive, saved.Addictions)
	assert.Equal(t, models.AnswerNo, saved.Controlling, "unknown answers fall back to the safe value")
	assert.Equal(t, models.AnswerNo, saved.FinancialAbuse)
}

func TestSetCurrency(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx, _ := registerUser(t, svc)

	require.NoError(t, svc.SetCurrency(ctx, "aud"))
	user, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AUD", user.Currency)

	assert.ErrorIs(t, svc.SetCurrency(ctx, "dollars"), ErrInvalidInput)
}
