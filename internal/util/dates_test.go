package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateActualDate(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		targetDay int
		expected  time.Time
	}{
		{"normal day", 2024, time.March, 15, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"31 in february leap year", 2024, time.February, 31, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"31 in february", 2023, time.February, 31, time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)},
		{"31 in april", 2024, time.April, 31, time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)},
		{"december", 2024, time.December, 31, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateActualDate(tt.year, tt.month, tt.targetDay))
		})
	}
}

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name     string
		asOf     time.Time
		dueDay   int
		expected time.Time
	}{
		{"later this month", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), 5, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"today is due day", time.Date(2024, 1, 5, 14, 0, 0, 0, time.UTC), 5, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"rolls to next month", time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), 5, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)},
		{"clamps in february", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), 30, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"rolls over year end", time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC), 10, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextDueDate(tt.asOf, tt.dueDay))
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("  ")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = ParseDate("15/01/2024")
	assert.Error(t, err)
}
