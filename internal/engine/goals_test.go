package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpavliga/lifeledger/internal/models"
)

func TestProjectSavings(t *testing.T) {
	from := models.MonthKey("2025-03")

	t.Run("already met targets have no ETA", func(t *testing.T) {
		proj := ProjectSavings(1000, 1000, 500, from)

		assert.False(t, proj.Determinate)
		assert.Zero(t, proj.MonthsNeeded)
		assert.Empty(t, proj.ETA)
	})

	t.Run("overshot targets have no ETA", func(t *testing.T) {
		proj := ProjectSavings(1000, 1500, 500, from)

		assert.False(t, proj.Determinate)
	})

	t.Run("zero or negative rates have no ETA", func(t *testing.T) {
		assert.False(t, ProjectSavings(1000, 0, 0, from).Determinate)
		assert.False(t, ProjectSavings(1000, 0, -50, from).Determinate)
	})

	t.Run("months needed is the ceiling of remaining over rate", func(t *testing.T) {
		proj := ProjectSavings(1200, 0, 300, from)

		require.True(t, proj.Determinate)
		assert.Equal(t, 4, proj.MonthsNeeded)
		assert.Equal(t, models.MonthKey("2025-07"), proj.ETA)
	})

	t.Run("partial months round up to a whole month", func(t *testing.T) {
		proj := ProjectSavings(1000, 0, 300, from)

		require.True(t, proj.Determinate)
		assert.Equal(t, 4, proj.MonthsNeeded)
	})

	t.Run("saved progress shortens the projection", func(t *testing.T) {
		proj := ProjectSavings(1200, 600, 300, from)

		require.True(t, proj.Determinate)
		assert.Equal(t, 2, proj.MonthsNeeded)
		assert.Equal(t, models.MonthKey("2025-05"), proj.ETA)
	})

	t.Run("ETA advances across year boundaries", func(t *testing.T) {
		proj := ProjectSavings(12000, 0, 1000, models.MonthKey("2025-11"))

		require.True(t, proj.Determinate)
		assert.Equal(t, 12, proj.MonthsNeeded)
		assert.Equal(t, models.MonthKey("2026-11"), proj.ETA)
	})
}

func TestOutlookFor(t *testing.T) {
	from := models.MonthKey("2025-03")

	t.Run("deadline goals echo the stored date without projecting", func(t *testing.T) {
		deadline := models.NewDate(2026, time.June, 1)
		g := models.Goal{Title: "House deposit", Target: 20000, Saved: 500, Deadline: &deadline}

		outlook := OutlookFor(g, 800, from)

		assert.Equal(t, GoalModeDeadline, outlook.Mode)
		require.NotNil(t, outlook.Deadline)
		assert.Equal(t, deadline, *outlook.Deadline)
		assert.Nil(t, outlook.Projection)
	})

	t.Run("the ASAP flag wins over a stored deadline", func(t *testing.T) {
		deadline := models.NewDate(2026, time.June, 1)
		g := models.Goal{Title: "Car", Target: 6000, Saved: 0, Deadline: &deadline, ASAP: true}

		outlook := OutlookFor(g, 1000, from)

		assert.Equal(t, GoalModeASAP, outlook.Mode)
		require.NotNil(t, outlook.Projection)
		assert.True(t, outlook.Projection.Determinate)
		assert.Equal(t, 6, outlook.Projection.MonthsNeeded)
	})

	t.Run("goals without a deadline project from the rate", func(t *testing.T) {
		g := models.Goal{Title: "Emergency fund", Target: 3000, Saved: 0}

		outlook := OutlookFor(g, 0, from)

		assert.Equal(t, GoalModeASAP, outlook.Mode)
		require.NotNil(t, outlook.Projection)
		assert.False(t, outlook.Projection.Determinate)
	})
}

func TestOutlooks(t *testing.T) {
	t.Run("order of the goal list is preserved", func(t *testing.T) {
		goals := []models.Goal{
			{Title: "B", Target: 100},
			{Title: "A", Target: 100},
		}

		outlooks := Outlooks(goals, 50, models.MonthKey("2025-03"))

		require.Len(t, outlooks, 2)
		assert.Equal(t, "B", outlooks[0].Goal.Title)
		assert.Equal(t, "A", outlooks[1].Goal.Title)
	})
}
