package domain

import (
	"fmt"
	"time"
)

// PeriodLayout is the layout of a Period in time.Format notation
const PeriodLayout = "2006-01"

// Period is a calendar month identified as "YYYY-MM". It is the unit of
// interest accrual and chit due scheduling. Zero-padded periods order
// chronologically under plain string comparison.
type Period string

// ParsePeriod validates s as a "YYYY-MM" period
func ParsePeriod(s string) (Period, error) {
	// Validate format: must be exactly 7 characters (YYYY-MM)
	if len(s) != 7 || s[4] != '-' {
		return "", ErrInvalidPeriod
	}
	for i, r := range s {
		if i == 4 {
			continue
		}
		if r < '0' || r > '9' {
			return "", ErrInvalidPeriod
		}
	}
	t, err := time.Parse(PeriodLayout, s)
	if err != nil {
		return "", ErrInvalidPeriod
	}
	if t.Year() < 1 {
		return "", ErrInvalidPeriod
	}
	return Period(s), nil
}

// MustPeriod parses s and panics on malformed input. Intended for constants and tests.
func MustPeriod(s string) Period {
	p, err := ParsePeriod(s)
	if err != nil {
		panic(fmt.Sprintf("domain: invalid period %q", s))
	}
	return p
}

// NewPeriod builds a period from a year and month
func NewPeriod(year int, month time.Month) Period {
	return Period(fmt.Sprintf("%04d-%02d", year, int(month)))
}

// PeriodOf returns the period a date falls in
func PeriodOf(t time.Time) Period {
	return NewPeriod(t.Year(), t.Month())
}

func (p Period) String() string {
	return string(p)
}

// Valid reports whether p is a well-formed period
func (p Period) Valid() bool {
	_, err := ParsePeriod(string(p))
	return err == nil
}

// YearMonth splits the period into its year and month
func (p Period) YearMonth() (int, time.Month) {
	t := p.Start()
	return t.Year(), t.Month()
}

// Before reports whether p is strictly earlier than o
func (p Period) Before(o Period) bool {
	return p < o
}

// After reports whether p is strictly later than o
func (p Period) After(o Period) bool {
	return p > o
}

// AddMonths shifts the period by n months (n may be negative)
func (p Period) AddMonths(n int) Period {
	return PeriodOf(p.Start().AddDate(0, n, 0))
}

// Next returns the following period
func (p Period) Next() Period {
	return p.AddMonths(1)
}

// Prev returns the preceding period
func (p Period) Prev() Period {
	return p.AddMonths(-1)
}

// Start returns the first day of the period (UTC midnight)
func (p Period) Start() time.Time {
	t, err := time.Parse(PeriodLayout, string(p))
	if err != nil {
		return time.Time{}
	}
	return t
}

// End returns the last day of the period (UTC midnight)
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

// Contains reports whether the date t falls inside the period
func (p Period) Contains(t time.Time) bool {
	return PeriodOf(t) == p
}

// MinPeriod returns the earlier of two periods
func MinPeriod(a, b Period) Period {
	if a.Before(b) {
		return a
	}
	return b
}

// PeriodRange lists every period from 'from' to 'to' inclusive.
// Returns nil when to precedes from. The range ends at 9999-12, the last
// period with a four-digit year.
func PeriodRange(from, to Period) []Period {
	if to.Before(from) {
		return nil
	}
	var periods []Period
	for p := from; !p.After(to); {
		periods = append(periods, p)
		next := p.Next()
		if !next.Valid() || !next.After(p) {
			break
		}
		p = next
	}
	return periods
}
