package models

import (
	"fmt"
	"time"
)

// monthLayout is the wire format for month keys.
const monthLayout = "2006-01"

// MonthKey identifies a calendar month as a YYYY-MM string. It is the key for
// aggregation targets and report snapshots.
type MonthKey string

// MonthOf returns the month key containing the given time.
func MonthOf(t time.Time) MonthKey {
	return MonthKey(t.UTC().Format(monthLayout))
}

// ParseMonth validates a YYYY-MM string and returns it as a MonthKey.
func ParseMonth(s string) (MonthKey, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return MonthOf(t), nil
}

// Valid reports whether the key is a well-formed YYYY-MM string.
func (m MonthKey) Valid() bool {
	_, err := time.Parse(monthLayout, string(m))
	return err == nil
}

// Start returns midnight UTC on the first day of the month.
func (m MonthKey) Start() time.Time {
	t, err := time.Parse(monthLayout, string(m))
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddMonths returns the key advanced by n whole months (n may be negative).
func (m MonthKey) AddMonths(n int) MonthKey {
	return MonthOf(m.Start().AddDate(0, n, 0))
}

// Contains reports whether the given time falls inside the month.
func (m MonthKey) Contains(t time.Time) bool {
	return MonthOf(t) == m
}

// MonthsUntil returns the number of whole months from m to other. The result
// is negative when other precedes m.
func (m MonthKey) MonthsUntil(other MonthKey) int {
	a, b := m.Start(), other.Start()
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
