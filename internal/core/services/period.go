package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
)

// MonthToRange resolves a "YYYY-MM" selector to the calendar month range
// [YYYY-MM-01, next month-01).
func MonthToRange(month string) (domain.PeriodRange, error) {
	year, m, err := parseMonthSelector(month)
	if err != nil {
		return domain.PeriodRange{}, err
	}

	start := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	return domain.PeriodRange{Start: start, End: start.AddDate(0, 1, 0)}, nil
}

// PeriodToRange resolves a "YYYY-MM" selector with a custom period start day to
// the rolling budget period [YYYY-MM-<d>, next month-<d>), where d is clamped to
// the last valid day of each month independently.
//
// Example: month=2025-12, startDay=10 -> [2025-12-10, 2026-01-10).
func PeriodToRange(month string, startDay int) (domain.PeriodRange, error) {
	year, m, err := parseMonthSelector(month)
	if err != nil {
		return domain.PeriodRange{}, err
	}

	start := time.Date(year, m, clampDay(year, m, startDay), 0, 0, 0, 0, time.UTC)

	nextYear, nextMonth := year, m+1
	if m == time.December {
		nextYear, nextMonth = year+1, time.January
	}
	end := time.Date(nextYear, nextMonth, clampDay(nextYear, nextMonth, startDay), 0, 0, 0, 0, time.UTC)

	return domain.PeriodRange{Start: start, End: end}, nil
}

// parseMonthSelector validates and splits a "YYYY-MM" selector.
func parseMonthSelector(month string) (int, time.Month, error) {
	parts := strings.SplitN(month, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: month selector must be YYYY-MM, got %q", apperrors.ErrValidation, month)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year <= 0 {
		return 0, 0, fmt.Errorf("%w: invalid year in month selector %q", apperrors.ErrValidation, month)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("%w: month must be between 1 and 12 in selector %q", apperrors.ErrValidation, month)
	}
	return year, time.Month(m), nil
}

// clampDay limits a configured start day to a day that exists in the given month
// (e.g. 31 -> 30/28), with a floor of 1.
func clampDay(year int, month time.Month, day int) int {
	last := daysInMonth(year, month)
	if day < 1 {
		return 1
	}
	if day > last {
		return last
	}
	return day
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// addMonthsClamped steps a date forward n months, clamping the day of month to
// the target month's length. Unlike time.AddDate it never spills into the next
// month (Jan 31 + 1 month is Feb 28/29, not Mar 2/3).
func addMonthsClamped(d time.Time, n int) time.Time {
	year, month := d.Year(), int(d.Month())+n
	for month > 12 {
		month -= 12
		year++
	}
	day := d.Day()
	if last := daysInMonth(year, time.Month(month)); day > last {
		day = last
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, d.Location())
}

// resolveUserRange turns the optional month/startDay query selectors into a
// concrete range. A nil month means all time (nil range). When startDay is not
// supplied the user's configured period start day applies; 1 or below keeps
// plain calendar months.
func resolveUserRange(ctx context.Context, settingsRepo portsrepo.SettingsRepositoryFacade, userID string, month *string, startDay *int) (*domain.PeriodRange, error) {
	if month == nil {
		return nil, nil
	}

	day := 1
	if startDay != nil {
		day = *startDay
	} else if settingsRepo != nil {
		if settings, err := settingsRepo.FindSettings(ctx, userID); err == nil {
			day = settings.PeriodStartDay
		}
	}

	if day <= 1 {
		rng, err := MonthToRange(*month)
		if err != nil {
			return nil, err
		}
		return &rng, nil
	}

	rng, err := PeriodToRange(*month, day)
	if err != nil {
		return nil, err
	}
	return &rng, nil
}
