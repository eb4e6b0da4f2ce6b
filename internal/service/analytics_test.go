package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpavliga/lifeledger/internal/models"
)

func TestMonthlySummaryExcludesFlaggedIncome(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx, _ := registerUser(t, svc)

	_, err := svc.CreateIncome(ctx, &models.Income{
		Name: "Salary", Amount: 3000, Cadence: models.CadenceMonthly,
	})
	require.NoError(t, err)

	excluded := false
	_, err = svc.CreateIncome(ctx, &models.Income{
		Name: "Side gig", Amount: 800, Cadence: models.CadenceMonthly, Included: &excluded,
	})
	require.NoError(t, err)

	sum, err := svc.MonthlySummary(ctx, models.MonthKey("2026-09"))
	require.NoError(t, err)
	assert.InDelta(t, 3000, sum.Income, 1e-9)
}

func TestSaveReportSnapshotReplacesSameMonth(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx, user := registerUser(t, svc)

	income, err := svc.CreateIncome(ctx, &models.Income{
		Name: "Salary", Amount: 3000, Cadence: models.CadenceMonthly,
	})
	require.NoError(t, err)

	month := models.MonthKey("2026-08")
	first, err := svc.SaveReportSnapshot(ctx, month)
	require.NoError(t, err)
	assert.InDelta(t, 3000, first.IncomeTotal, 1e-9)

	income.Amount = 4500
	_, err = svc.UpdateIncome(ctx, income.ID, income)
	require.NoError(t, err)

	second, err := svc.SaveReportSnapshot(ctx, month)
	require.NoError(t, err)
	assert.InDelta(t, 4500, second.IncomeTotal, 1e-9)

	require.Len(t, store.reports[user.ID], 1, "re-saving a month replaces, never appends")
	stored, err := svc.Report(ctx, month)
	require.NoError(t, err)
	assert.InDelta(t, 4500, stored.IncomeTotal, 1e-9)
	assert.Equal(t, "USD", stored.Currency)
}

func TestInstallmentSchedule(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx, _ := registerUser(t, svc)

	p, err := svc.CreateBNPLPurchase(ctx, &models.BNPLPurchase{
		Provider:     "afterpay",
		Total:        100,
		StartDate:    models.NewDate(2026, 9, 4),
		Cadence:      models.CadenceFortnightly,
		PaymentsLeft: 4,
	})
	require.NoError(t, err)

	plan, err := svc.InstallmentSchedule(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, plan, 4)
	assert.Equal(t, models.NewDate(2026, 9, 4), plan[0].Due)
	assert.Equal(t, models.NewDate(2026, 9, 18), plan[1].Due)
	assert.InDelta(t, 25.0, plan[0].Amount, 1e-9)
}

func TestBabyProjection(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx, _ := registerUser(t, svc)

	_, err := svc.SaveBabyPlan(ctx, &models.BabyPlan{
		Planning: true, TargetFund: 1200, Saved: 0, MonthlySave: 300,
	})
	require.NoError(t, err)

	proj, err := svc.BabyProjection(ctx)
	require.NoError(t, err)
	require.True(t, proj.Determinate)
	assert.Equal(t, 4, proj.MonthsNeeded)
	assert.Equal(t, models.MonthOf(time.Now()).AddMonths(4), proj.ETA)
}

func TestImmigrationProjectionAlreadyFunded(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx, _ := registerUser(t, svc)

	_, err := svc.SaveImmigrationPlan(ctx, &models.ImmigrationPlan{
		Country: "Canada", TargetAmount: 5000, Saved: 5000, MonthlySave: 100,
	})
	require.NoError(t, err)

	proj, err := svc.ImmigrationProjection(ctx)
	require.NoError(t, err)
	assert.False(t, proj.Determinate, "a funded target has no ETA to project")
}

func TestCalendarFeedWindow(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx, _ := registerUser(t, svc)

	start := models.DateOf(time.Now().UTC().AddDate(0, 0, 3))
	_, err := svc.CreateBNPLPurchase(ctx, &models.BNPLPurchase{
		Provider:     "zip",
		Total:        200,
		StartDate:    start,
		Cadence:      models.CadenceWeekly,
		PaymentsLeft: 4,
	})
	require.NoError(t, err)

	events, err := svc.CalendarFeed(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 4, "all four weekly installments land inside one month")
	for _, ev := range events {
		assert.Equal(t, models.EventInstallment, ev.Kind)
		assert.InDelta(t, 50.0, ev.Amount, 1e-9)
	}
}

func TestSendInstallmentReminders(t *testing.T) {
	svc, _, mailer := newTestService(t)
	ctx, _ := registerUser(t, svc)

	_, err := svc.CreateBNPLPurchase(ctx, &models.BNPLPurchase{
		Provider:     "afterpay",
		Total:        100,
		StartDate:    models.DateOf(time.Now().UTC().AddDate(0, 0, 2)),
		Cadence:      models.CadenceFortnightly,
		PaymentsLeft: 4,
	})
	require.NoError(t, err)

	require.NoError(t, svc.SendInstallmentReminders())
	require.Len(t, mailer.reminders, 1)
	require.Len(t, mailer.reminders[0], 1, "only the installment inside the 7-day window")
	assert.Equal(t, "afterpay", mailer.reminders[0][0].Label)
}

func TestSendInstallmentRemindersSkipsQuietWeeks(t *testing.T) {
	svc, _, mailer := newTestService(t)
	ctx, _ := registerUser(t, svc)

	_, err := svc.CreateBNPLPurchase(ctx, &models.BNPLPurchase{
		Provider:     "afterpay",
		Total:        100,
		StartDate:    models.DateOf(time.Now().UTC().AddDate(0, 1, 0)),
		Cadence:      models.CadenceFortnightly,
		PaymentsLeft: 4,
	})
	require.NoError(t, err)

	require.NoError(t, svc.SendInstallmentReminders())
	assert.Empty(t, mailer.reminders)
}

func TestEmailReport(t *testing.T) {
	svc, _, mailer := newTestService(t)
	ctx, _ := registerUser(t, svc)

	month := models.MonthKey("2026-08")
	_, err := svc.SaveReportSnapshot(ctx, month)
	require.NoError(t, err)

	require.NoError(t, svc.EmailReport(ctx, month))
	require.Len(t, mailer.reports, 1)
	assert.Equal(t, month, mailer.reports[0].Month)
}

func TestRefreshAllSnapshots(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx, user := registerUser(t, svc)

	_, err := svc.CreateIncome(ctx, &models.Income{
		Name: "Salary", Amount: 2500, Cadence: models.CadenceMonthly,
	})
	require.NoError(t, err)

	require.NoError(t, svc.RefreshAllSnapshots())
	require.NoError(t, svc.RefreshAllSnapshots(), "refresh is idempotent")

	require.Len(t, store.reports[user.ID], 1)
	snap := store.reports[user.ID][models.MonthOf(time.Now())]
	require.NotNil(t, snap)
	assert.InDelta(t, 2500, snap.IncomeTotal, 1e-9)
}
