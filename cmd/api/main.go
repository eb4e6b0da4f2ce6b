package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/dpavliga/lifeledger/internal/config"
	"github.com/dpavliga/lifeledger/internal/handler"
	"github.com/dpavliga/lifeledger/internal/integrations/rates"
	"github.com/dpavliga/lifeledger/internal/jobs"
	"github.com/dpavliga/lifeledger/internal/middleware"
	"github.com/dpavliga/lifeledger/internal/repository"
	"github.com/dpavliga/lifeledger/internal/service"
	"github.com/dpavliga/lifeledger/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}
	if err := repository.RunMigrations(db, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	var mailer service.Mailer
	if cfg.SMTPConfigured() {
		mailer = email.NewSender(cfg, logger)
	} else {
		logger.Warn("SMTP not configured, mail features disabled")
	}
	svc := service.NewService(repo, logger, cfg, mailer)
	ratesClient := rates.NewClient(cfg, logger)
	h := handler.NewHandler(svc, ratesClient, logger)

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	// Protected routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.AuthMiddleware(cfg))

	api.HandleFunc("/me", h.Me).Methods("GET")
	api.HandleFunc("/me/currency", h.SetCurrency).Methods("PUT")

	api.HandleFunc("/incomes", h.CreateIncome).Methods("POST")
	api.HandleFunc("/incomes", h.ListIncomes).Methods("GET")
	api.HandleFunc("/incomes/{id}", h.UpdateIncome).Methods("PUT")
	api.HandleFunc("/incomes/{id}", h.DeleteIncome).Methods("DELETE")

	api.HandleFunc("/expenses", h.CreateExpense).Methods("POST")
	api.HandleFunc("/expenses", h.ListExpenses).Methods("GET")
	api.HandleFunc("/expenses/{id}", h.UpdateExpense).Methods("PUT")
	api.HandleFunc("/expenses/{id}", h.DeleteExpense).Methods("DELETE")

	api.HandleFunc("/bnpl", h.CreateBNPLPurchase).Methods("POST")
	api.HandleFunc("/bnpl", h.ListBNPLPurchases).Methods("GET")
	api.HandleFunc("/bnpl/{id}", h.UpdateBNPLPurchase).Methods("PUT")
	api.HandleFunc("/bnpl/{id}", h.DeleteBNPLPurchase).Methods("DELETE")
	api.HandleFunc("/bnpl/{id}/schedule", h.InstallmentSchedule).Methods("GET")

	api.HandleFunc("/goals", h.CreateGoal).Methods("POST")
	api.HandleFunc("/goals", h.ListGoals).Methods("GET")
	api.HandleFunc("/goals/projections", h.GoalProjections).Methods("GET")
	api.HandleFunc("/goals/{id}", h.UpdateGoal).Methods("PUT")
	api.HandleFunc("/goals/{id}", h.DeleteGoal).Methods("DELETE")

	api.HandleFunc("/relationship", h.Relationship).Methods("GET")
	api.HandleFunc("/relationship", h.SaveRelationship).Methods("PUT")
	api.HandleFunc("/relationship/score", h.RelationshipScore).Methods("GET")

	api.HandleFunc("/healthprofile", h.HealthProfile).Methods("GET")
	api.HandleFunc("/healthprofile", h.SaveHealthProfile).Methods("PUT")
	api.HandleFunc("/healthprofile/bmi", h.BMICheck).Methods("GET")

	api.HandleFunc("/workouts", h.CreateWorkout).Methods("POST")
	api.HandleFunc("/workouts", h.ListWorkouts).Methods("GET")
	api.HandleFunc("/workouts/{id}", h.UpdateWorkout).Methods("PUT")
	api.HandleFunc("/workouts/{id}", h.DeleteWorkout).Methods("DELETE")

	api.HandleFunc("/journal", h.CreateJournalEntry).Methods("POST")
	api.HandleFunc("/journal", h.ListJournalEntries).Methods("GET")
	api.HandleFunc("/journal/{id}", h.UpdateJournalEntry).Methods("PUT")
	api.HandleFunc("/journal/{id}", h.DeleteJournalEntry).Methods("DELETE")

	api.HandleFunc("/baby", h.BabyPlan).Methods("GET")
	api.HandleFunc("/baby", h.SaveBabyPlan).Methods("PUT")
	api.HandleFunc("/baby/projection", h.BabyProjection).Methods("GET")

	api.HandleFunc("/immigration", h.ImmigrationPlan).Methods("GET")
	api.HandleFunc("/immigration", h.SaveImmigrationPlan).Methods("PUT")
	api.HandleFunc("/immigration/projection", h.ImmigrationProjection).Methods("GET")

	api.HandleFunc("/summary", h.MonthlySummary).Methods("GET")
	api.HandleFunc("/advisor", h.Advisor).Methods("GET")
	api.HandleFunc("/reports", h.ListReports).Methods("GET")
	api.HandleFunc("/reports/snapshot", h.SaveSnapshot).Methods("POST")
	api.HandleFunc("/reports/{month}", h.GetReport).Methods("GET")
	api.HandleFunc("/reports/{month}/email", h.EmailReport).Methods("POST")
	api.HandleFunc("/export/calendar.ics", h.ExportCalendar).Methods("GET")
	api.HandleFunc("/rates", h.Rate).Methods("GET")

	// Start background jobs
	scheduler := jobs.NewScheduler(svc, logger)
	if err := scheduler.Start(cfg); err != nil {
		logger.Fatalf("Failed to start scheduler: %v", err)
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
	scheduler.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
}
