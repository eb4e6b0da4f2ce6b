package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dpavliga/lifeledger/internal/engine"
	"github.com/dpavliga/lifeledger/internal/models"
)

// The computed views all follow the same shape: load the current record sets,
// hand them to the engine, return the result. The engine never sees the
// store.

// MonthlySummary aggregates the current record sets for the given month.
func (s *Service) MonthlySummary(ctx context.Context, month models.MonthKey) (models.MonthSummary, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return models.MonthSummary{}, err
	}
	return s.summarize(userID, month)
}

func (s *Service) summarize(userID string, month models.MonthKey) (models.MonthSummary, error) {
	incomes, err := s.store.ListIncomes(userID)
	if err != nil {
		return models.MonthSummary{}, err
	}
	expenses, err := s.store.ListExpenses(userID)
	if err != nil {
		return models.MonthSummary{}, err
	}
	purchases, err := s.store.ListBNPLPurchases(userID)
	if err != nil {
		return models.MonthSummary{}, err
	}
	return engine.Summarize(month, incomes, expenses, purchases), nil
}

// InstallmentSchedule expands one purchase into its remaining installments.
func (s *Service) InstallmentSchedule(ctx context.Context, purchaseID string) ([]models.Installment, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.store.FindBNPLPurchase(userID, purchaseID)
	if err != nil {
		return nil, err
	}
	return engine.InstallmentPlan(*p), nil
}

// SaveReportSnapshot freezes the given month's aggregates into a report row.
// A second snapshot for the same month replaces the first.
func (s *Service) SaveReportSnapshot(ctx context.Context, month models.MonthKey) (*models.ReportMonth, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.store.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	return s.snapshotFor(user, month)
}

func (s *Service) snapshotFor(user *models.User, month models.MonthKey) (*models.ReportMonth, error) {
	sum, err := s.summarize(user.ID, month)
	if err != nil {
		return nil, err
	}
	snap := engine.Snapshot(sum, user.ID, user.Currency)
	if err := s.store.SaveReportMonth(&snap); err != nil {
		return nil, err
	}
	s.log.Infof("Report snapshot saved for user %s, month %s", user.ID, month)
	return &snap, nil
}

// Reports returns the persisted report history, oldest month first.
func (s *Service) Reports(ctx context.Context) ([]models.ReportMonth, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.ListReportMonths(userID)
}

// Report returns the stored snapshot for one month.
func (s *Service) Report(ctx context.Context, month models.MonthKey) (*models.ReportMonth, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.FindReportMonth(userID, month)
}

// GoalOutlooks resolves every goal into a deadline echo or an ETA projection.
// The savings rate feeding the projections is the current month's unfloored
// net balance; a deficit month leaves ASAP goals indeterminate.
func (s *Service) GoalOutlooks(ctx context.Context) ([]models.GoalOutlook, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	now := models.MonthOf(time.Now())
	sum, err := s.summarize(userID, now)
	if err != nil {
		return nil, err
	}
	goals, err := s.store.ListGoals(userID)
	if err != nil {
		return nil, err
	}
	return engine.Outlooks(goals, sum.Net(), now), nil
}

// RelationshipAssessment scores the stored relationship check-in.
func (s *Service) RelationshipAssessment(ctx context.Context) (*models.RelationshipAssessment, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	d, err := s.store.FindRelationship(userID)
	if err != nil {
		return nil, err
	}
	a := engine.ScoreRelationship(*d)
	return &a, nil
}

// BMI computes the body mass index from the stored health profile.
func (s *Service) BMI(ctx context.Context) (*models.BMIResult, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	h, err := s.store.FindHealthProfile(userID)
	if err != nil {
		return nil, err
	}
	r := engine.BMI(float64(h.HeightCm), float64(h.WeightKg))
	return &r, nil
}

// BabyProjection estimates when the baby fund reaches its target at the
// plan's steady monthly contribution.
func (s *Service) BabyProjection(ctx context.Context) (*models.GoalProjection, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.store.FindBabyPlan(userID)
	if err != nil {
		return nil, err
	}
	proj := engine.ProjectSavings(float64(p.TargetFund), float64(p.Saved), float64(p.MonthlySave), models.MonthOf(time.Now()))
	return &proj, nil
}

// ImmigrationProjection estimates when the visa fund reaches its target.
func (s *Service) ImmigrationProjection(ctx context.Context) (*models.GoalProjection, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.store.FindImmigrationPlan(userID)
	if err != nil {
		return nil, err
	}
	proj := engine.ProjectSavings(float64(p.TargetAmount), float64(p.Saved), float64(p.MonthlySave), models.MonthOf(time.Now()))
	return &proj, nil
}

// Advice runs the rule-based advisor over everything the user has recorded.
// Missing relationship or health records simply skip their rules.
func (s *Service) Advice(ctx context.Context) ([]models.Advice, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	sum, err := s.summarize(userID, models.MonthOf(time.Now()))
	if err != nil {
		return nil, err
	}
	goals, err := s.store.ListGoals(userID)
	if err != nil {
		return nil, err
	}

	var assessment *models.RelationshipAssessment
	if rel, err := s.store.FindRelationship(userID); err == nil {
		a := engine.ScoreRelationship(*rel)
		assessment = &a
	}
	var bmi *models.BMIResult
	if h, err := s.store.FindHealthProfile(userID); err == nil {
		r := engine.BMI(float64(h.HeightCm), float64(h.WeightKg))
		bmi = &r
	}

	return engine.Advise(sum, goals, assessment, bmi), nil
}

// CalendarFeed projects paydays, bills, installments and workouts into the
// next N months of dated events for the calendar exporter.
func (s *Service) CalendarFeed(ctx context.Context, months int) ([]models.CalendarEvent, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	if months < 1 {
		months = 1
	}
	if months > 12 {
		months = 12
	}
	incomes, err := s.store.ListIncomes(userID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.ListExpenses(userID)
	if err != nil {
		return nil, err
	}
	purchases, err := s.store.ListBNPLPurchases(userID)
	if err != nil {
		return nil, err
	}
	workouts, err := s.store.ListWorkouts(userID)
	if err != nil {
		return nil, err
	}
	from := time.Now().UTC().Truncate(24 * time.Hour)
	to := from.AddDate(0, months, 0)
	return engine.CalendarEvents(incomes, expenses, purchases, workouts, from, to), nil
}

// EmailReport mails the stored snapshot for a month to the user's own
// address.
func (s *Service) EmailReport(ctx context.Context, month models.MonthKey) error {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return err
	}
	if s.mailer == nil {
		return fmt.Errorf("outgoing mail is not configured: %w", ErrInvalidInput)
	}
	user, err := s.store.FindUserByID(userID)
	if err != nil {
		return err
	}
	report, err := s.store.FindReportMonth(userID, month)
	if err != nil {
		return err
	}
	if err := s.mailer.SendMonthlyReport(user.Email, report); err != nil {
		return fmt.Errorf("failed to send report: %w", err)
	}
	s.log.Infof("Report for %s mailed to %s", month, user.Email)
	return nil
}

// RefreshAllSnapshots re-freezes the current month for every user. Snapshots
// replace by month key, so the refresh is idempotent.
func (s *Service) RefreshAllSnapshots() error {
	users, err := s.store.ListUsers()
	if err != nil {
		return fmt.Errorf("failed to refresh snapshots: %w", err)
	}
	month := models.MonthOf(time.Now())
	for i := range users {
		if _, err := s.snapshotFor(&users[i], month); err != nil {
			s.log.Errorf("Snapshot refresh failed for user %s: %v", users[i].ID, err)
		}
	}
	return nil
}

// SendInstallmentReminders mails every user a list of their BNPL installments
// due within the next week. A nil mailer makes this a no-op.
func (s *Service) SendInstallmentReminders() error {
	if s.mailer == nil {
		return nil
	}
	users, err := s.store.ListUsers()
	if err != nil {
		return fmt.Errorf("failed to send reminders: %w", err)
	}
	from := time.Now().UTC().Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, 7)
	for _, u := range users {
		purchases, err := s.store.ListBNPLPurchases(u.ID)
		if err != nil {
			s.log.Errorf("Reminder lookup failed for user %s: %v", u.ID, err)
			continue
		}
		events := engine.CalendarEvents(nil, nil, purchases, nil, from, to)
		if len(events) == 0 {
			continue
		}
		if err := s.mailer.SendInstallmentReminder(u.Email, events); err != nil {
			s.log.Errorf("Reminder email failed for user %s: %v", u.ID, err)
		}
	}
	return nil
}
