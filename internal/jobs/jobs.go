package jobs

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/dpavliga/lifeledger/internal/config"
	"github.com/dpavliga/lifeledger/internal/service"
)

// Scheduler owns the background jobs: a nightly re-freeze of every user's
// current-month report and a weekly reminder mail for upcoming pay-in-four
// installments.
type Scheduler struct {
	cron *cron.Cron
	svc  *service.Service
	log  *logrus.Logger
}

// NewScheduler creates the scheduler without starting it.
func NewScheduler(svc *service.Service, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		svc:  svc,
		log:  log,
	}
}

// Start registers both jobs and begins running them.
func (s *Scheduler) Start(cfg *config.Config) error {
	_, err := s.cron.AddFunc(cfg.SnapshotSpec, func() {
		s.log.Info("Running scheduled snapshot refresh")
		if err := s.svc.RefreshAllSnapshots(); err != nil {
			s.log.Errorf("Snapshot refresh job failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule snapshot job: %w", err)
	}

	_, err = s.cron.AddFunc(cfg.ReminderSpec, func() {
		s.log.Info("Running scheduled installment reminders")
		if err := s.svc.SendInstallmentReminders(); err != nil {
			s.log.Errorf("Reminder job failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminder job: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop halts the scheduler, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
