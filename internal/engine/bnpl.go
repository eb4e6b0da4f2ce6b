package engine

import (
	"github.com/shopspring/decimal"

	"github.com/dpavliga/lifeledger/internal/models"
)

// InstallmentPlan expands a purchase into its remaining installments. Each
// installment is a quarter of the purchase total regardless of how many
// payments remain, matching how the pay-in-4 providers bill: earlier payments
// already made do not change the size of the ones still due. Dates step 7 or
// 14 days from the start date depending on the purchase cadence.
func InstallmentPlan(p models.BNPLPurchase) []models.Installment {
	left := p.PaymentsLeft
	if left < 0 {
		left = 0
	}
	if left > models.MaxInstallments {
		left = models.MaxInstallments
	}
	if left == 0 {
		return nil
	}

	per := round2(float64(p.Total) / models.MaxInstallments)

	step := 7
	if p.Cadence == models.CadenceFortnightly {
		step = 14
	}

	plan := make([]models.Installment, 0, left)
	due := p.StartDate
	for i := 0; i < left; i++ {
		plan = append(plan, models.Installment{Due: due, Amount: per})
		due = due.AddDays(step)
	}
	return plan
}

// round2 rounds to 2 decimal places through decimal arithmetic so that values
// like 0.145 land on 0.15 rather than drifting on binary floats.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
