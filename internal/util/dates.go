package util

import (
	"strings"
	"time"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// Today returns the current date at UTC midnight
func Today() time.Time {
	return DateOf(time.Now())
}

// DateOf truncates t to its calendar date at UTC midnight
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date. An empty string yields the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateLayout, s)
}

// CalculateActualDate returns the actual date for a target day in a given month,
// handling months with fewer days (e.g., day 31 in February returns Feb 28/29)
func CalculateActualDate(year int, month time.Month, targetDay int) time.Time {
	// Day 0 of the next month is the last day of this one
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	actualDay := targetDay
	if actualDay > lastDay {
		actualDay = lastDay
	}

	return time.Date(year, month, actualDay, 0, 0, 0, 0, time.UTC)
}

// NextDueDate is the first date on or after asOf that falls on dueDay,
// clamped to the month's last day
func NextDueDate(asOf time.Time, dueDay int) time.Time {
	asOf = DateOf(asOf)
	candidate := CalculateActualDate(asOf.Year(), asOf.Month(), dueDay)
	if candidate.Before(asOf) {
		next := asOf.AddDate(0, 0, -asOf.Day()+1).AddDate(0, 1, 0)
		candidate = CalculateActualDate(next.Year(), next.Month(), dueDay)
	}
	return candidate
}
