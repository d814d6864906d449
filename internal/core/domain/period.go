package domain

import "time"

// PeriodRange is a half-open date range [Start, End) describing one budget period.
type PeriodRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the range.
func (r PeriodRange) Contains(d time.Time) bool {
	return !d.Before(r.Start) && d.Before(r.End)
}
