package models

import "time"

// Categorical risk answers on the relationship form.
const (
	AddictionNone   = "none"
	AddictionPast   = "past"
	AddictionActive = "active"

	AnswerNo  = "no"
	AnswerYes = "yes"
)

// RelationshipData is the single relationship check-in record for a user: ten
// 1-5 ratings plus three categorical risk answers. Ratings are clamped into
// range when scored, not on entry.
type RelationshipData struct {
	UserID        string `json:"-"`
	PartnerName   string `json:"partner_name"`
	YearsTogether int    `json:"years_together"`

	Communication      Rating `json:"communication"`
	TrustSafety        Rating `json:"trust_safety"`
	ConflictResolution Rating `json:"conflict_resolution"`
	FinancialHabits    Rating `json:"financial_habits"`
	ValuesAlignment    Rating `json:"values_alignment"`
	KidsAlignment      Rating `json:"kids_alignment"`
	WorkReliability    Rating `json:"work_reliability"`
	GrowthMindset      Rating `json:"growth_mindset"`
	EmotionalSupport   Rating `json:"emotional_support"`
	FuturePlans        Rating `json:"future_plans"`

	Addictions     string `json:"addictions"`      // none | past | active
	Controlling    string `json:"controlling"`     // no | yes
	FinancialAbuse string `json:"financial_abuse"` // no | yes

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Ratings returns the ten ratings in their fixed evaluation order.
func (r RelationshipData) Ratings() [10]Rating {
	return [10]Rating{
		r.Communication,
		r.TrustSafety,
		r.ConflictResolution,
		r.FinancialHabits,
		r.ValuesAlignment,
		r.KidsAlignment,
		r.WorkReliability,
		r.GrowthMindset,
		r.EmotionalSupport,
		r.FuturePlans,
	}
}
