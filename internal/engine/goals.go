package engine

import (
	"math"

	"github.com/dpavliga/lifeledger/internal/models"
)

// Outlook modes. Deadline goals carry a user-chosen date through untouched,
// ASAP goals are projected from the available monthly rate.
const (
	GoalModeASAP     = "asap"
	GoalModeDeadline = "deadline"
)

// ProjectSavings estimates how many whole months of saving at monthlyRate it
// takes to move from saved to target, and the month that lands on counting
// from the given one. A non-positive rate or an already-met target yields an
// indeterminate projection.
func ProjectSavings(target, saved, monthlyRate float64, from models.MonthKey) models.GoalProjection {
	if target <= saved {
		return models.GoalProjection{}
	}
	if monthlyRate <= 0 {
		return models.GoalProjection{}
	}
	months := int(math.Ceil((target - saved) / monthlyRate))
	return models.GoalProjection{
		Determinate:  true,
		MonthsNeeded: months,
		ETA:          from.AddMonths(months),
	}
}

// OutlookFor resolves a single goal into its display outlook. Goals with a
// deadline and no ASAP flag keep their date as-is; everything else gets a
// rate-based projection.
func OutlookFor(g models.Goal, monthlyRate float64, from models.MonthKey) models.GoalOutlook {
	if !g.ASAP && g.Deadline != nil {
		return models.GoalOutlook{
			Goal:     g,
			Mode:     GoalModeDeadline,
			Deadline: g.Deadline,
		}
	}
	proj := ProjectSavings(float64(g.Target), float64(g.Saved), monthlyRate, from)
	return models.GoalOutlook{
		Goal:       g,
		Mode:       GoalModeASAP,
		Projection: &proj,
	}
}

// Outlooks maps OutlookFor over a goal list, preserving order.
func Outlooks(goals []models.Goal, monthlyRate float64, from models.MonthKey) []models.GoalOutlook {
	out := make([]models.GoalOutlook, 0, len(goals))
	for _, g := range goals {
		out = append(out, OutlookFor(g, monthlyRate, from))
	}
	return out
}
