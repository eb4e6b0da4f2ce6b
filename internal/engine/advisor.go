package engine

import (
	"fmt"
	"sort"

	"github.com/dpavliga/lifeledger/internal/models"
)

// Advise runs the fixed advisor rules over a month summary and the records
// that feed it. Rules fire independently and the returned list keeps the rule
// order, so the same inputs always render the same advice.
func Advise(sum models.MonthSummary, goals []models.Goal, rel *models.RelationshipAssessment, bmi *models.BMIResult) []models.Advice {
	advice := make([]models.Advice, 0, 4)
	net := sum.Net()

	if net < 0 {
		advice = append(advice, models.Advice{
			Severity: models.AdviceAlert,
			Topic:    "spending",
			Message:  fmt.Sprintf("Monthly commitments exceed income by %.2f. Review expenses or pause new BNPL purchases.", -net),
		})
	}

	if sum.Income > 0 && net >= 0 && net/sum.Income < 0.10 {
		advice = append(advice, models.Advice{
			Severity: models.AdviceWarn,
			Topic:    "savings",
			Message:  fmt.Sprintf("You are saving %.0f%% of income. Aim for at least 10%%.", net/sum.Income*100),
		})
	}

	switch {
	case sum.Income > 0 && sum.BNPLDue/sum.Income > 0.30:
		advice = append(advice, models.Advice{
			Severity: models.AdviceWarn,
			Topic:    "bnpl",
			Message:  fmt.Sprintf("BNPL installments take %.0f%% of this month's income.", sum.BNPLDue/sum.Income*100),
		})
	case sum.Income == 0 && sum.BNPLDue > 0:
		advice = append(advice, models.Advice{
			Severity: models.AdviceWarn,
			Topic:    "bnpl",
			Message:  "BNPL installments are due this month with no recorded income.",
		})
	}

	if name, share := topCategory(sum); share > 0.40 {
		advice = append(advice, models.Advice{
			Severity: models.AdviceInfo,
			Topic:    "spending",
			Message:  fmt.Sprintf("%s makes up %.0f%% of monthly expenses.", name, share*100),
		})
	}

	advice = append(advice, goalAdvice(sum, goals)...)

	if rel != nil {
		switch rel.Band {
		case models.BandHighRisk:
			advice = append(advice, models.Advice{
				Severity: models.AdviceAlert,
				Topic:    "relationship",
				Message:  "The relationship check-in landed in the high-risk band. Read its suggestions and consider outside support.",
			})
		case models.BandNeedsWork:
			advice = append(advice, models.Advice{
				Severity: models.AdviceInfo,
				Topic:    "relationship",
				Message:  "The relationship check-in flagged areas that need work.",
			})
		}
	}

	if bmi != nil && bmi.Band != "" && bmi.Band != BMIHealthy {
		advice = append(advice, models.Advice{
			Severity: models.AdviceInfo,
			Topic:    "health",
			Message:  fmt.Sprintf("BMI is %.1f (%s).", bmi.BMI, bmi.Band),
		})
	}

	return advice
}

// goalAdvice checks each unachieved goal against the available monthly rate,
// highest priority first. Deadline goals compare the required pace against the
// current one; ASAP goals warn when no ETA exists.
func goalAdvice(sum models.MonthSummary, goals []models.Goal) []models.Advice {
	rate := sum.Net()
	if rate < 0 {
		rate = 0
	}
	from := sum.Month

	ordered := make([]models.Goal, len(goals))
	copy(ordered, goals)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority < ordered[j].Priority
		}
		return ordered[i].Title < ordered[j].Title
	})

	var advice []models.Advice
	for _, g := range ordered {
		if g.Achieved {
			continue
		}
		remaining := float64(g.Target) - float64(g.Saved)
		if remaining <= 0 {
			continue
		}

		if !g.ASAP && g.Deadline != nil && !g.Deadline.IsZero() {
			months := from.MonthsUntil(models.MonthOf(g.Deadline.Time))
			if months <= 0 {
				advice = append(advice, models.Advice{
					Severity: models.AdviceAlert,
					Topic:    "goals",
					Message:  fmt.Sprintf("Goal %q has reached its deadline with %.2f still to save.", g.Title, remaining),
				})
				continue
			}
			required := remaining / float64(months)
			if required > rate {
				advice = append(advice, models.Advice{
					Severity: models.AdviceWarn,
					Topic:    "goals",
					Message:  fmt.Sprintf("Goal %q needs %.2f per month to meet its deadline, above the %.2f currently left over.", g.Title, required, rate),
				})
			}
			continue
		}

		if proj := ProjectSavings(float64(g.Target), float64(g.Saved), rate, from); !proj.Determinate {
			advice = append(advice, models.Advice{
				Severity: models.AdviceWarn,
				Topic:    "goals",
				Message:  fmt.Sprintf("Goal %q has no estimated finish at the current savings rate.", g.Title),
			})
		}
	}
	return advice
}

// topCategory returns the largest expense bucket and its share of the expense
// total. Ties break alphabetically so the pick is stable.
func topCategory(sum models.MonthSummary) (string, float64) {
	if sum.Expense <= 0 {
		return "", 0
	}
	name, best := "", 0.0
	for c, v := range sum.ByCategory {
		if v > best || (v == best && (name == "" || c < name)) {
			name, best = c, v
		}
	}
	if name == "" {
		return "", 0
	}
	return name, best / sum.Expense
}
