package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

var hundred = decimal.NewFromInt(100)

// GoalProgressAt derives the progress snapshot of a goal as of a given instant.
//
// Percent is the truncated integer share of target saved, clamped to [0, 100];
// a non-positive target yields 0. MonthsLeft is the number of
// started 30-day blocks until the due date, 0 once the date has passed. A goal
// is completed as soon as saved reaches target, expired when the due date lies
// strictly before now's calendar date without completion, and active otherwise.
func GoalProgressAt(goal domain.Goal, now time.Time) domain.GoalProgress {
	// Due dates are calendar dates; compare against today, not the instant.
	now = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	percent := 0
	if goal.TargetAmount.IsPositive() {
		percent = int(goal.SavedAmount.Div(goal.TargetAmount).Mul(hundred).IntPart())
		if percent < 0 {
			percent = 0
		}
		if percent > 100 {
			percent = 100
		}
	}

	remaining := goal.TargetAmount.Sub(goal.SavedAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	daysLeft := int(goal.DueDate.Sub(now).Hours() / 24)
	monthsLeft := 0
	if daysLeft > 0 {
		monthsLeft = (daysLeft + 29) / 30
	}

	status := domain.GoalActive
	switch {
	case goal.SavedAmount.GreaterThanOrEqual(goal.TargetAmount):
		status = domain.GoalCompleted
	case now.After(goal.DueDate):
		status = domain.GoalExpired
	}

	return domain.GoalProgress{
		Percent:         percent,
		RemainingAmount: remaining,
		Status:          status,
		MonthsLeft:      monthsLeft,
	}
}
