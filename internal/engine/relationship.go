package engine

import (
	"math"

	"github.com/dpavliga/lifeledger/internal/models"
)

// ScoreRelationship turns the questionnaire into a 0-100 score, a band and
// the flag/suggestion lists. The base score is the rating average stretched
// onto 0-100, then the fixed penalties are subtracted. Flags and suggestions
// are emitted in a stable order so repeated calls over the same answers
// render identically.
func ScoreRelationship(d models.RelationshipData) models.RelationshipAssessment {
	ratings := d.Ratings()
	total := 0
	for i := range ratings {
		ratings[i] = clampRating(ratings[i])
		total += int(ratings[i])
	}
	avg := float64(total) / float64(len(ratings))
	score := (avg - 1.0) / 4.0 * 100.0

	flags := make([]string, 0, 4)
	if d.Addictions == models.AddictionActive {
		score -= 25
		flags = append(flags, "Active addiction reported")
	}
	if d.Controlling == models.AnswerYes {
		score -= 30
		flags = append(flags, "Controlling behaviour reported")
	}
	if d.FinancialAbuse == models.AnswerYes {
		score -= 35
		flags = append(flags, "Signs of financial abuse reported")
	}
	trust := clampRating(d.TrustSafety)
	if trust <= 2 {
		score -= 15
		flags = append(flags, "Trust and safety rated very low")
	}
	conflict := clampRating(d.ConflictResolution)
	if conflict <= 2 {
		score -= 10
		flags = append(flags, "Conflict resolution rated very low")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	final := int(math.Round(score))

	band := models.BandHighRisk
	switch {
	case final >= 80:
		band = models.BandHealthy
	case final >= 60:
		band = models.BandNeedsWork
	}

	return models.RelationshipAssessment{
		Score:       final,
		Band:        band,
		RedFlags:    flags,
		Suggestions: suggestions(band, d),
	}
}

func suggestions(band string, d models.RelationshipData) []string {
	out := make([]string, 0, 7)
	switch band {
	case models.BandHealthy:
		out = append(out, "Strong foundation. Keep doing what already works and check in regularly.")
	case models.BandNeedsWork:
		out = append(out, "Several areas need attention. Pick one and work on it together this month.")
	default:
		out = append(out, "Serious concerns are present. Consider talking to a counsellor or a trusted support person.")
	}
	if clampRating(d.Communication) < 4 {
		out = append(out, "Set a regular time to talk without screens or distractions.")
	}
	if clampRating(d.FinancialHabits) < 4 {
		out = append(out, "Agree on a shared budget and review spending together each month.")
	}
	if clampRating(d.ValuesAlignment) < 4 {
		out = append(out, "Talk through long-term values and name where they differ.")
	}
	if clampRating(d.KidsAlignment) < 4 {
		out = append(out, "Have an honest conversation about plans for kids.")
	}
	if clampRating(d.WorkReliability) < 4 {
		out = append(out, "Talk about work stability and how to back each other up.")
	}
	if clampRating(d.GrowthMindset) < 4 {
		out = append(out, "Encourage learning and trying new things, separately and together.")
	}
	return out
}

func clampRating(r models.Rating) models.Rating {
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}
