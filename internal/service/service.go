package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/dpavliga/lifeledger/internal/config"
	"github.com/dpavliga/lifeledger/internal/models"
)

// ErrInvalidInput marks a request the caller can fix. Handlers map it to a
// 400 response.
var ErrInvalidInput = errors.New("invalid input")

// Store is the persistence surface the service depends on.
type Store interface {
	CreateUser(*models.User) error
	FindUserByEmail(email string) (*models.User, error)
	FindUserByID(id string) (*models.User, error)
	ListUsers() ([]models.User, error)
	UpdateUserCurrency(userID, currency string) error

	CreateIncome(*models.Income) error
	ListIncomes(userID string) ([]models.Income, error)
	FindIncome(userID, id string) (*models.Income, error)
	UpdateIncome(*models.Income) error
	DeleteIncome(userID, id string) error

	CreateExpense(*models.Expense) error
	ListExpenses(userID string) ([]models.Expense, error)
	FindExpense(userID, id string) (*models.Expense, error)
	UpdateExpense(*models.Expense) error
	DeleteExpense(userID, id string) error

	CreateBNPLPurchase(*models.BNPLPurchase) error
	ListBNPLPurchases(userID string) ([]models.BNPLPurchase, error)
	FindBNPLPurchase(userID, id string) (*models.BNPLPurchase, error)
	UpdateBNPLPurchase(*models.BNPLPurchase) error
	DeleteBNPLPurchase(userID, id string) error

	CreateGoal(*models.Goal) error
	ListGoals(userID string) ([]models.Goal, error)
	FindGoal(userID, id string) (*models.Goal, error)
	UpdateGoal(*models.Goal) error
	DeleteGoal(userID, id string) error

	SaveRelationship(*models.RelationshipData) error
	FindRelationship(userID string) (*models.RelationshipData, error)

	SaveHealthProfile(*models.HealthProfile) error
	FindHealthProfile(userID string) (*models.HealthProfile, error)

	CreateWorkout(*models.Workout) error
	ListWorkouts(userID string) ([]models.Workout, error)
	UpdateWorkout(*models.Workout) error
	DeleteWorkout(userID, id string) error

	CreateJournalEntry(*models.JournalEntry) error
	ListJournalEntries(userID string) ([]models.JournalEntry, error)
	FindJournalEntry(userID, id string) (*models.JournalEntry, error)
	UpdateJournalEntry(*models.JournalEntry) error
	DeleteJournalEntry(userID, id string) error

	SaveBabyPlan(*models.BabyPlan) error
	FindBabyPlan(userID string) (*models.BabyPlan, error)
	SaveImmigrationPlan(*models.ImmigrationPlan) error
	FindImmigrationPlan(userID string) (*models.ImmigrationPlan, error)

	SaveReportMonth(*models.ReportMonth) error
	ListReportMonths(userID string) ([]models.ReportMonth, error)
	FindReportMonth(userID string, month models.MonthKey) (*models.ReportMonth, error)
}

// Mailer sends transactional mail on behalf of the service.
type Mailer interface {
	SendMonthlyReport(to string, report *models.ReportMonth) error
	SendInstallmentReminder(to string, events []models.CalendarEvent) error
}

// Service handles business logic
type Service struct {
	store  Store
	log    *logrus.Logger
	config *config.Config
	mailer Mailer
}

// NewService initializes a new service. The mailer may be nil when SMTP is
// not configured.
func NewService(store Store, log *logrus.Logger, cfg *config.Config, mailer Mailer) *Service {
	return &Service{store: store, log: log, config: cfg, mailer: mailer}
}

// Register creates a new user with hashed password
func (s *Service) Register(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required: %w", ErrInvalidInput)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters: %w", ErrInvalidInput)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Currency:     s.config.DefaultCurrency,
	}

	if err := s.store.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.store.FindUserByEmail(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	// Generate JWT
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.ID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}

// CurrentUser returns the authenticated user's profile
func (s *Service) CurrentUser(ctx context.Context) (*models.User, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.FindUserByID(userID)
}

// SetCurrency changes the authenticated user's display currency
func (s *Service) SetCurrency(ctx context.Context, currency string) error {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return err
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return fmt.Errorf("currency must be a 3-letter code: %w", ErrInvalidInput)
	}
	if err := s.store.UpdateUserCurrency(userID, currency); err != nil {
		return err
	}
	s.log.Infof("Currency changed for user %s: %s", userID, currency)
	return nil
}

func userIDFrom(ctx context.Context) (string, error) {
	userID, ok := ctx.Value("userID").(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user ID not found in context")
	}
	return userID, nil
}
