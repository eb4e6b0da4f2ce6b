package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/dpavliga/lifeledger/internal/export"
	"github.com/dpavliga/lifeledger/internal/models"
)

// Computed views: month summaries, report snapshots, goal projections, the
// advisor and the calendar export.

// MonthlySummary aggregates the record sets for one month. The month query
// parameter defaults to the current month.
func (h *Handler) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	month := models.MonthOf(time.Now())
	if q := r.URL.Query().Get("month"); q != "" {
		parsed, err := models.ParseMonth(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		month = parsed
	}
	sum, err := h.svc.MonthlySummary(r.Context(), month)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, sum)
}

// ListReports returns the persisted report history
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.svc.Reports(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, reports)
}

// GetReport returns one month's stored snapshot
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	month, err := models.ParseMonth(mux.Vars(r)["month"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	report, err := h.svc.Report(r.Context(), month)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, report)
}

// SaveSnapshot freezes the current month into the report history, replacing
// any earlier snapshot for the same month
func (h *Handler) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	month := models.MonthOf(time.Now())
	if q := r.URL.Query().Get("month"); q != "" {
		parsed, err := models.ParseMonth(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		month = parsed
	}
	snap, err := h.svc.SaveReportSnapshot(r.Context(), month)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusCreated, snap)
}

// EmailReport mails one month's stored snapshot to the user
func (h *Handler) EmailReport(w http.ResponseWriter, r *http.Request) {
	month, err := models.ParseMonth(mux.Vars(r)["month"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.svc.EmailReport(r.Context(), month); err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, map[string]string{"status": "sent"})
}

// GoalProjections resolves every goal into a deadline echo or an ETA
func (h *Handler) GoalProjections(w http.ResponseWriter, r *http.Request) {
	outlooks, err := h.svc.GoalOutlooks(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, outlooks)
}

// Advisor runs the rule-based advisor over everything the user has recorded
func (h *Handler) Advisor(w http.ResponseWriter, r *http.Request) {
	advice, err := h.svc.Advice(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, advice)
}

// ExportCalendar emits the coming months of paydays, bills, installments and
// workouts as an iCalendar file
func (h *Handler) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	months := 3
	if q := r.URL.Query().Get("months"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			http.Error(w, "months must be a number", http.StatusBadRequest)
			return
		}
		months = n
	}
	events, err := h.svc.CalendarFeed(r.Context(), months)
	if err != nil {
		h.fail(w, err)
		return
	}
	body := export.Calendar(events, time.Now())
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="lifeledger.ics"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.log.Errorf("Failed to write calendar: %v", err)
	}
}

// Rate returns the current base→quote exchange rate for display
func (h *Handler) Rate(w http.ResponseWriter, r *http.Request) {
	base := r.URL.Query().Get("base")
	quote := r.URL.Query().Get("quote")
	if base == "" || quote == "" {
		http.Error(w, "base and quote are required", http.StatusBadRequest)
		return
	}
	rate, err := h.rates.Rate(base, quote)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to get rate: %v", err), http.StatusBadGateway)
		return
	}
	h.respond(w, http.StatusOK, map[string]interface{}{
		"base":  base,
		"quote": quote,
		"rate":  rate,
	})
}
