package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpavliga/lifeledger/internal/models"
)

func TestAdvise(t *testing.T) {
	month := models.MonthKey("2025-03")

	t.Run("a comfortable month produces no advice", func(t *testing.T) {
		sum := models.MonthSummary{Month: month, Income: 5000, Expense: 3000, BNPLDue: 0}

		advice := Advise(sum, nil, nil, nil)

		assert.Empty(t, advice)
	})

	t.Run("a deficit month raises an alert first", func(t *testing.T) {
		sum := models.MonthSummary{Month: month, Income: 2000, Expense: 2500, BNPLDue: 100}

		advice := Advise(sum, nil, nil, nil)

		require.NotEmpty(t, advice)
		assert.Equal(t, models.AdviceAlert, advice[0].Severity)
		assert.Equal(t, "spending", advice[0].Topic)
		assert.Contains(t, advice[0].Message, "600.00")
	})

	t.Run("a thin margin warns about the savings rate", func(t *testing.T) {
		sum := models.MonthSummary{Month: month, Income: 4000, Expense: 3900}

		advice := Advise(sum, nil, nil, nil)

		require.Len(t, advice, 1)
		assert.Equal(t, models.AdviceWarn, advice[0].Severity)
		assert.Equal(t, "savings", advice[0].Topic)
	})

	t.Run("heavy BNPL load against income warns", func(t *testing.T) {
		sum := models.MonthSummary{Month: month, Income: 1000, Expense: 100, BNPLDue: 400}

		advice := Advise(sum, nil, nil, nil)

		var topics []string
		for _, a := range advice {
			topics = append(topics, a.Topic)
		}
		assert.Contains(t, topics, "bnpl")
	})

	t.Run("BNPL due with no income at all warns", func(t *testing.T) {
		sum := models.MonthSummary{Month: month, BNPLDue: 50}

		advice := Advise(sum, nil, nil, nil)

		require.NotEmpty(t, advice)
		found := false
		for _, a := range advice {
			if a.Topic == "bnpl" {
				found = true
				assert.Contains(t, a.Message, "no recorded income")
			}
		}
		assert.True(t, found)
	})

	t.Run("a dominant expense category is pointed out", func(t *testing.T) {
		sum := models.MonthSummary{
			Month:   month,
			Income:  5000,
			Expense: 2000,
			ByCategory: map[string]float64{
				"Housing":   1000,
				"Groceries": 600,
				"Transport": 400,
			},
		}

		advice := Advise(sum, nil, nil, nil)

		require.Len(t, advice, 1)
		assert.Equal(t, models.AdviceInfo, advice[0].Severity)
		assert.Contains(t, advice[0].Message, "Housing")
		assert.Contains(t, advice[0].Message, "50%")
	})

	t.Run("a deadline goal that cannot be met on time warns", func(t *testing.T) {
		deadline := models.NewDate(2025, time.June, 15)
		goals := []models.Goal{
			{Title: "Trip", Target: 6000, Saved: 0, Deadline: &deadline},
		}
		sum := models.MonthSummary{Month: month, Income: 4000, Expense: 3000}

		advice := Advise(sum, goals, nil, nil)

		// Needs 2000 a month over three months against 1000 left over.
		require.Len(t, advice, 1)
		assert.Equal(t, models.AdviceWarn, advice[0].Severity)
		assert.Equal(t, "goals", advice[0].Topic)
		assert.Contains(t, advice[0].Message, "Trip")
		assert.Contains(t, advice[0].Message, "2000.00")
	})

	t.Run("a passed deadline with savings outstanding alerts", func(t *testing.T) {
		deadline := models.NewDate(2025, time.February, 1)
		goals := []models.Goal{
			{Title: "Wedding", Target: 5000, Saved: 1000, Deadline: &deadline},
		}
		sum := models.MonthSummary{Month: month, Income: 4000, Expense: 3000}

		advice := Advise(sum, goals, nil, nil)

		require.Len(t, advice, 1)
		assert.Equal(t, models.AdviceAlert, advice[0].Severity)
		assert.Contains(t, advice[0].Message, "Wedding")
	})

	t.Run("an ASAP goal with no spare income warns", func(t *testing.T) {
		goals := []models.Goal{
			{Title: "Emergency fund", Target: 3000, Saved: 100, ASAP: true},
		}
		sum := models.MonthSummary{Month: month, Income: 3000, Expense: 3000}

		advice := Advise(sum, goals, nil, nil)

		// A zero margin trips the savings-rate warning as well.
		require.Len(t, advice, 2)
		assert.Equal(t, "savings", advice[0].Topic)
		assert.Equal(t, "goals", advice[1].Topic)
		assert.Contains(t, advice[1].Message, "Emergency fund")
	})

	t.Run("achieved and fully funded goals are skipped", func(t *testing.T) {
		deadline := models.NewDate(2025, time.January, 1)
		goals := []models.Goal{
			{Title: "Done", Target: 1000, Saved: 0, Deadline: &deadline, Achieved: true},
			{Title: "Funded", Target: 1000, Saved: 1000, Deadline: &deadline},
		}
		sum := models.MonthSummary{Month: month, Income: 4000, Expense: 3000}

		advice := Advise(sum, goals, nil, nil)

		assert.Empty(t, advice)
	})

	t.Run("goal advice follows priority order", func(t *testing.T) {
		goals := []models.Goal{
			{Title: "Later", Target: 9000, Priority: 3, ASAP: true},
			{Title: "First", Target: 9000, Priority: 1, ASAP: true},
		}
		sum := models.MonthSummary{Month: month}

		advice := Advise(sum, goals, nil, nil)

		require.Len(t, advice, 2)
		assert.Contains(t, advice[0].Message, "First")
		assert.Contains(t, advice[1].Message, "Later")
	})

	t.Run("a high-risk relationship band alerts", func(t *testing.T) {
		sum := models.MonthSummary{Month: month, Income: 5000, Expense: 3000}
		rel := &models.RelationshipAssessment{Score: 30, Band: models.BandHighRisk}

		advice := Advise(sum, nil, rel, nil)

		require.Len(t, advice, 1)
		assert.Equal(t, models.AdviceAlert, advice[0].Severity)
		assert.Equal(t, "relationship", advice[0].Topic)
	})

	t.Run("a BMI outside the healthy band is mentioned", func(t *testing.T) {
		sum := models.MonthSummary{Month: month, Income: 5000, Expense: 3000}
		bmi := &models.BMIResult{BMI: 27.4, Band: BMIOverweight}

		advice := Advise(sum, nil, nil, bmi)

		require.Len(t, advice, 1)
		assert.Equal(t, models.AdviceInfo, advice[0].Severity)
		assert.Equal(t, "health", advice[0].Topic)
		assert.Contains(t, advice[0].Message, "27.4")
	})

	t.Run("a healthy BMI stays quiet", func(t *testing.T) {
		sum := models.MonthSummary{Month: month, Income: 5000, Expense: 3000}
		bmi := &models.BMIResult{BMI: 22.0, Band: BMIHealthy}

		advice := Advise(sum, nil, nil, bmi)

		assert.Empty(t, advice)
	})
}
