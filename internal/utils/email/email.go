package email

import (
	"fmt"
	"net/smtp"
	"sort"
	"strings"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/dpavliga/lifeledger/internal/config"
	"github.com/dpavliga/lifeledger/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendMonthlyReport sends a month's frozen report as a plain-text summary
func (s *Sender) SendMonthlyReport(to string, report *models.ReportMonth) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Your %s money report", report.Month)

	var b strings.Builder
	fmt.Fprintf(&b, "Here is your report for %s (%s).\n\n", report.Month, report.Currency)
	fmt.Fprintf(&b, "Income:    %.2f\n", report.IncomeTotal)
	fmt.Fprintf(&b, "Expenses:  %.2f (of which pay-in-four: %.2f)\n", report.ExpenseTotal, report.BNPLDue)
	fmt.Fprintf(&b, "Saved:     %.2f\n", report.Savings)

	if len(report.Categories) > 0 {
		b.WriteString("\nSpending by category:\n")
		names := make([]string, 0, len(report.Categories))
		for name := range report.Categories {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "  %-14s %.2f\n", name, report.Categories[name])
		}
	}
	b.WriteString("\nBest regards,\nLifeLedger")
	e.Text = []byte(b.String())

	return s.send(e, to)
}

// SendInstallmentReminder sends a reminder listing the pay-in-four
// installments due within the coming week
func (s *Sender) SendInstallmentReminder(to string, events []models.CalendarEvent) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Upcoming pay-in-four installments"

	var b strings.Builder
	b.WriteString("These installments are due within the next 7 days:\n\n")
	for _, ev := range events {
		fmt.Fprintf(&b, "  %s  %-20s %.2f\n", ev.Date.Format("2006-01-02"), ev.Label, ev.Amount)
	}
	b.WriteString("\nMake sure the money is set aside.\n\nBest regards,\nLifeLedger")
	e.Text = []byte(b.String())

	return s.send(e, to)
}

func (s *Sender) send(e *email.Email, to string) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
