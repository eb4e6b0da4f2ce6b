package engine

import "strings"

// CategoryOther is the catch-all bucket for labels outside the known set.
const CategoryOther = "Other"

// Categories is the closed set used for expense aggregation. Free-text labels
// are folded into it through CanonicalCategory so that report buckets stay
// stable across months.
var Categories = []string{
	"Housing",
	"Utilities",
	"Groceries",
	"Transport",
	"Health",
	"Insurance",
	"Eating Out",
	"Entertainment",
	"Subscriptions",
	"Education",
	"Childcare",
	"Debt",
	"Personal",
	CategoryOther,
}

var categoryIndex = buildCategoryIndex()

func buildCategoryIndex() map[string]string {
	idx := make(map[string]string, len(Categories)*4)
	for _, c := range Categories {
		idx[strings.ToLower(c)] = c
	}
	aliases := map[string]string{
		"rent":         "Housing",
		"mortgage":     "Housing",
		"power":        "Utilities",
		"electricity":  "Utilities",
		"water":        "Utilities",
		"internet":     "Utilities",
		"phone":        "Utilities",
		"food":         "Groceries",
		"supermarket":  "Groceries",
		"fuel":         "Transport",
		"petrol":       "Transport",
		"gas":          "Transport",
		"car":          "Transport",
		"parking":      "Transport",
		"medical":      "Health",
		"doctor":       "Health",
		"pharmacy":     "Health",
		"gym":          "Health",
		"dining":       "Eating Out",
		"restaurant":   "Eating Out",
		"takeaway":     "Eating Out",
		"coffee":       "Eating Out",
		"streaming":    "Subscriptions",
		"subscription": "Subscriptions",
		"school":       "Education",
		"course":       "Education",
		"daycare":      "Childcare",
		"kids":         "Childcare",
		"loan":         "Debt",
		"credit card":  "Debt",
		"bnpl":         "Debt",
		"clothes":      "Personal",
		"clothing":     "Personal",
		"haircut":      "Personal",
	}
	for k, v := range aliases {
		idx[k] = v
	}
	return idx
}

// CanonicalCategory maps a free-text expense label onto the closed category
// set. Matching is case-insensitive and unknown labels land in Other.
func CanonicalCategory(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return CategoryOther
	}
	if c, ok := categoryIndex[name]; ok {
		return c
	}
	return CategoryOther
}
