package engine

import (
	"sort"
	"time"

	"github.com/dpavliga/lifeledger/internal/models"
)

// maxOccurrences caps cadence expansion so a start date far in the past
// cannot spin the loop unreasonably long.
const maxOccurrences = 520

// CalendarEvents projects every dated record into the half-open window
// [from, to): one event per payday and bill occurrence, per BNPL installment
// and per workout session. Money events are all-day; workouts carry their
// start time and duration. The result is sorted by date, then kind, then
// label.
func CalendarEvents(incomes []models.Income, expenses []models.Expense, purchases []models.BNPLPurchase, workouts []models.Workout, from, to time.Time) []models.CalendarEvent {
	var events []models.CalendarEvent

	for _, in := range incomes {
		if !in.IsIncluded() {
			continue
		}
		for _, day := range occurrences(in.NextDate.Time, in.Cadence, from, to) {
			events = append(events, models.CalendarEvent{
				Date:   day,
				Label:  in.Name,
				Amount: float64(in.Amount),
				Kind:   models.EventPayday,
				AllDay: true,
			})
		}
	}

	for _, ex := range expenses {
		if ex.NextDue == nil || ex.NextDue.IsZero() {
			continue
		}
		for _, day := range occurrences(ex.NextDue.Time, ex.Cadence, from, to) {
			events = append(events, models.CalendarEvent{
				Date:   day,
				Label:  ex.Name,
				Amount: float64(ex.Amount),
				Kind:   models.EventBill,
				AllDay: true,
			})
		}
	}

	for _, p := range purchases {
		for _, inst := range InstallmentPlan(p) {
			if inst.Due.Before(from) || !inst.Due.Before(to) {
				continue
			}
			events = append(events, models.CalendarEvent{
				Date:   inst.Due.Time,
				Label:  p.Provider,
				Amount: inst.Amount,
				Kind:   models.EventInstallment,
				AllDay: true,
			})
		}
	}

	for _, w := range workouts {
		cadence := models.Cadence("")
		if w.Weekly {
			cadence = models.CadenceWeekly
		}
		for _, at := range sessionTimes(w.StartAt, cadence, from, to) {
			events = append(events, models.CalendarEvent{
				Date:     at,
				Label:    w.Activity,
				Kind:     models.EventWorkout,
				Duration: w.DurationMin,
			})
		}
	}

	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Label < b.Label
	})
	return events
}

// occurrences lists the cadence repetitions of a start date that fall inside
// [from, to).
func occurrences(start time.Time, cadence models.Cadence, from, to time.Time) []time.Time {
	if start.IsZero() {
		return nil
	}
	var out []time.Time
	t := start
	for i := 0; i < maxOccurrences && t.Before(to); i++ {
		if !t.Before(from) {
			out = append(out, t)
		}
		t = nextOccurrence(t, cadence)
	}
	return out
}

// sessionTimes is occurrences for timed records: a one-off stays a single
// candidate, a weekly cadence repeats it.
func sessionTimes(start time.Time, cadence models.Cadence, from, to time.Time) []time.Time {
	if cadence == "" {
		if start.IsZero() || start.Before(from) || !start.Before(to) {
			return nil
		}
		return []time.Time{start}
	}
	return occurrences(start, cadence, from, to)
}

func nextOccurrence(t time.Time, cadence models.Cadence) time.Time {
	switch cadence {
	case models.CadenceWeekly:
		return t.AddDate(0, 0, 7)
	case models.CadenceFortnightly:
		return t.AddDate(0, 0, 14)
	case models.CadenceQuarterly:
		return t.AddDate(0, 3, 0)
	case models.CadenceYearly:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(0, 1, 0)
	}
}
