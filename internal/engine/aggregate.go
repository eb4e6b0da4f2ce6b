package engine

import "github.com/dpavliga/lifeledger/internal/models"

// Summarize builds the monthly picture for one user. Income and expense
// totals are cadence-normalized monthly equivalents over the full record
// sets, deliberately ignoring record dates: the summary answers "what does a
// typical month look like", not "what cleared in this one". BNPL is the
// exception, only installments actually due inside the given month count.
func Summarize(month models.MonthKey, incomes []models.Income, expenses []models.Expense, purchases []models.BNPLPurchase) models.MonthSummary {
	sum := models.MonthSummary{
		Month:      month,
		ByCategory: make(map[string]float64),
	}

	for _, in := range incomes {
		if !in.IsIncluded() {
			continue
		}
		sum.Income += MonthlyEquivalent(float64(in.Amount), in.Cadence)
	}

	for _, ex := range expenses {
		monthly := MonthlyEquivalent(float64(ex.Amount), ex.Cadence)
		sum.Expense += monthly
		sum.ByCategory[CanonicalCategory(ex.Category)] += monthly
	}

	for _, p := range purchases {
		for _, inst := range InstallmentPlan(p) {
			if month.Contains(inst.Due.Time) {
				sum.BNPLDue += inst.Amount
			}
		}
	}

	return sum
}
