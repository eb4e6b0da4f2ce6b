package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dpavliga/lifeledger/internal/models"
)

// Record writes go through here so the coercion rules stay in one place:
// negative money is coerced to zero, installment counts are clamped into the
// pay-in-four range, and an unknown cadence is the one thing that gets
// rejected outright.

// CreateIncome validates and stores a new income source
func (s *Service) CreateIncome(ctx context.Context, in *models.Income) (*models.Income, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := sanitizeIncome(in); err != nil {
		return nil, err
	}
	in.ID = uuid.NewString()
	in.UserID = userID
	if err := s.store.CreateIncome(in); err != nil {
		return nil, err
	}
	s.log.Infof("Income created for user %s: %s", userID, in.Name)
	return in, nil
}

// ListIncomes returns all income sources for the authenticated user
func (s *Service) ListIncomes(ctx context.Context) ([]models.Income, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.ListIncomes(userID)
}

// UpdateIncome replaces an income record by identity
func (s *Service) UpdateIncome(ctx context.Context, id string, in *models.Income) (*models.Income, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := sanitizeIncome(in); err != nil {
		return nil, err
	}
	in.ID = id
	in.UserID = userID
	if err := s.store.UpdateIncome(in); err != nil {
		return nil, err
	}
	return in, nil
}

// DeleteIncome removes an income source
func (s *Service) DeleteIncome(ctx context.Context, id string) error {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return err
	}
	return s.store.DeleteIncome(userID, id)
}

func sanitizeIncome(in *models.Income) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	if !in.Cadence.OneOf(models.IncomeCadences) {
		return fmt.Errorf("cadence %q is not allowed for income: %w", in.Cadence, ErrInvalidInput)
	}
	if in.Amount < 0 {
		in.Amount = 0
	}
	return nil
}

// CreateExpense validates and stores a new expense
func (s *Service) CreateExpense(ctx context.Context, ex *models.Expense) (*models.Expense, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := sanitizeExpense(ex); err != nil {
		return nil, err
	}
	ex.ID = uuid.NewString()
	ex.UserID = userID
	if err := s.store.CreateExpense(ex); err != nil {
		return nil, err
	}
	s.log.Infof("Expense created for user %s: %s", userID, ex.Name)
	return ex, nil
}

// ListExpenses returns all expenses for the authenticated user
func (s *Service) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.ListExpenses(userID)
}

// UpdateExpense replaces an expense record by identity
func (s *Service) UpdateExpense(ctx context.Context, id string, ex *models.Expense) (*models.Expense, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := sanitizeExpense(ex); err != nil {
		return nil, err
	}
	ex.ID = id
	ex.UserID = userID
	if err := s.store.UpdateExpense(ex); err != nil {
		return nil, err
	}
	return ex, nil
}

// DeleteExpense removes an expense
func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return err
	}
	return s.store.DeleteExpense(userID, id)
}

func sanitizeExpense(ex *models.Expense) error {
	ex.Name = strings.TrimSpace(ex.Name)
	if ex.Name == "" {
		return fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	if !ex.Cadence.OneOf(models.ExpenseCadences) {
		return fmt.Errorf("cadence %q is not allowed for expenses: %w", ex.Cadence, ErrInvalidInput)
	}
	if ex.Amount < 0 {
		ex.Amount = 0
	}
	ex.Category = strings.TrimSpace(ex.Category)
	return nil
}

// CreateBNPLPurchase validates and stores a new pay-in-four purchase
func (s *Service) CreateBNPLPurchase(ctx context.Context, p *models.BNPLPurchase) (*models.BNPLPurchase, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := sanitizePurchase(p); err != nil {
		return nil, err
	}
	p.ID = uuid.NewString()
	p.UserID = userID
	if err := s.store.CreateBNPLPurchase(p); err != nil {
		return nil, err
	}
	s.log.Infof("BNPL purchase created for user %s: %s", userID, p.Provider)
	return p, nil
}

// ListBNPLPurchases returns all purchases for the authenticated user
func (s *Service) ListBNPLPurchases(ctx context.Context) ([]models.BNPLPurchase, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.ListBNPLPurchases(userID)
}

// UpdateBNPLPurchase replaces a purchase record by identity
func (s *Service) UpdateBNPLPurchase(ctx context.Context, id string, p *models.BNPLPurchase) (*models.BNPLPurchase, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := sanitizePurchase(p); err != nil {
		return nil, err
	}
	p.ID = id
	p.UserID = userID
	if err := s.store.UpdateBNPLPurchase(p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteBNPLPurchase removes a purchase
func (s *Service) DeleteBNPLPurchase(ctx context.Context, id string) error {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return err
	}
	return s.store.DeleteBNPLPurchase(userID, id)
}

func sanitizePurchase(p *models.BNPLPurchase) error {
	p.Provider = strings.TrimSpace(p.Provider)
	if p.Provider == "" {
		return fmt.Errorf("provider is required: %w", ErrInvalidInput)
	}
	if !p.Cadence.OneOf(models.BNPLCadences) {
		return fmt.Errorf("cadence %q is not allowed for purchases: %w", p.Cadence, ErrInvalidInput)
	}
	if p.StartDate.IsZero() {
		return fmt.Errorf("start date is required: %w", ErrInvalidInput)
	}
	if p.Total < 0 {
		p.Total = 0
	}
	if p.PaymentsLeft < 0 {
		p.PaymentsLeft = 0
	}
	if p.PaymentsLeft > models.MaxInstallments {
		p.PaymentsLeft = models.MaxInstallments
	}
	return nil
}

// CreateGoal validates and stores a new savings goal
func (s *Service) CreateGoal(ctx context.Context, g *models.Goal) (*models.Goal, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := sanitizeGoal(g); err != nil {
		return nil, err
	}
	g.ID = uuid.NewString()
	g.UserID = userID
	if err := s.store.CreateGoal(g); err != nil {
		return nil, err
	}
	s.log.Infof("Goal created for user %s: %s", userID, g.Title)
	return g, nil
}

// ListGoals returns all goals for the authenticated user
func (s *Service) ListGoals(ctx context.Context) ([]models.Goal, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.ListGoals(userID)
}

// UpdateGoal replaces a goal record by identity
func (s *Service) UpdateGoal(ctx context.Context, id string, g *models.Goal) (*models.Goal, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := sanitizeGoal(g); err != nil {
		return nil, err
	}
	g.ID = id
	g.UserID = userID
	if err := s.store.UpdateGoal(g); err != nil {
		return nil, err
	}
	return g, nil
}

// DeleteGoal removes a goal
func (s *Service) DeleteGoal(ctx context.Context, id string) error {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return err
	}
	return s.store.DeleteGoal(userID, id)
}

func sanitizeGoal(g *models.Goal) error {
	g.Title = strings.TrimSpace(g.Title)
	if g.Title == "" {
		return fmt.Errorf("title is required: %w", ErrInvalidInput)
	}
	if g.Target < 0 {
		g.Target = 0
	}
	if g.Saved < 0 {
		g.Saved = 0
	}
	if g.Priority == 0 {
		g.Priority = 2
	}
	if g.Priority < 1 {
		g.Priority = 1
	}
	if g.Priority > 3 {
		g.Priority = 3
	}
	if g.Deadline != nil && g.Deadline.IsZero() {
		g.Deadline = nil
	}
	return nil
}
