package engine

import (
	"sort"

	"github.com/dpavliga/lifeledger/internal/models"
)

// Snapshot freezes a month summary into a report row. Totals are rounded to
// cents here, at the freeze point. The stored expense total folds the month's
// BNPL due into it, and savings is floored at zero: a deficit month reports
// zero saved, not a negative balance.
func Snapshot(sum models.MonthSummary, userID, currency string) models.ReportMonth {
	savings := sum.Income - (sum.Expense + sum.BNPLDue)
	if savings < 0 {
		savings = 0
	}

	cats := make(map[string]float64, len(sum.ByCategory))
	for name, v := range sum.ByCategory {
		cats[name] = round2(v)
	}

	return models.ReportMonth{
		UserID:       userID,
		Month:        sum.Month,
		Currency:     currency,
		IncomeTotal:  round2(sum.Income),
		ExpenseTotal: round2(sum.Expense + sum.BNPLDue),
		BNPLDue:      round2(sum.BNPLDue),
		Savings:      round2(savings),
		Categories:   cats,
	}
}

// MergeReports folds a fresh snapshot into an existing history. Months are
// unique keys and the newcomer wins over a stored row for the same month. The
// result is sorted chronologically.
func MergeReports(history []models.ReportMonth, snap models.ReportMonth) []models.ReportMonth {
	merged := make([]models.ReportMonth, 0, len(history)+1)
	replaced := false
	for _, r := range history {
		if r.Month == snap.Month {
			merged = append(merged, snap)
			replaced = true
			continue
		}
		merged = append(merged, r)
	}
	if !replaced {
		merged = append(merged, snap)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Month < merged[j].Month })
	return merged
}
