package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus describes where a savings goal stands relative to its target and due date.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalExpired   GoalStatus = "expired"
)

// Goal is a savings target. SavedAmount only ever grows, via explicit deposits;
// goals are not linked to transactions.
type Goal struct {
	GoalID       string          `json:"goalID"`
	UserID       string          `json:"userID"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	SavedAmount  decimal.Decimal `json:"savedAmount"`
	DueDate      time.Time       `json:"dueDate"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// GoalProgress is the derived view of a goal snapshot.
type GoalProgress struct {
	Percent         int             `json:"percent"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Status          GoalStatus      `json:"status"`
	MonthsLeft      int             `json:"monthsLeft"`
}
