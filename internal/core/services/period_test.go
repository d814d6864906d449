package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/services"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthToRange(t *testing.T) {
	rng, err := services.MonthToRange("2025-03")
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.March, 1), rng.Start)
	assert.Equal(t, date(2025, time.April, 1), rng.End)
}

func TestMonthToRange_DecemberRollsIntoNextYear(t *testing.T) {
	rng, err := services.MonthToRange("2025-12")
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.December, 1), rng.Start)
	assert.Equal(t, date(2026, time.January, 1), rng.End)
}

func TestMonthToRange_InvalidSelector(t *testing.T) {
	for _, selector := range []string{"2025", "2025-13", "2025-00", "march-2025", ""} {
		_, err := services.MonthToRange(selector)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "selector %q", selector)
	}
}

func TestPeriodToRange_CustomStartDay(t *testing.T) {
	rng, err := services.PeriodToRange("2025-12", 10)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.December, 10), rng.Start)
	assert.Equal(t, date(2026, time.January, 10), rng.End)
}

func TestPeriodToRange_StartDayClampedPerMonth(t *testing.T) {
	// Day 31 exists in January but not in February.
	rng, err := services.PeriodToRange("2025-01", 31)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.January, 31), rng.Start)
	assert.Equal(t, date(2025, time.February, 28), rng.End)

	// Leap year February keeps the 29th.
	rng, err = services.PeriodToRange("2024-01", 31)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.February, 29), rng.End)
}

func TestPeriodToRange_HalfOpenBoundaries(t *testing.T) {
	rng, err := services.PeriodToRange("2025-06", 15)
	require.NoError(t, err)
	assert.True(t, rng.Contains(date(2025, time.June, 15)))
	assert.True(t, rng.Contains(date(2025, time.July, 14)))
	assert.False(t, rng.Contains(date(2025, time.July, 15)))
	assert.False(t, rng.Contains(date(2025, time.June, 14)))
}
