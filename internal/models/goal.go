package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal represents a savings goal row in the database.
type Goal struct {
	GoalID       string          `db:"goal_id"`
	UserID       string          `db:"user_id"`
	Name         string          `db:"name"`
	TargetAmount decimal.Decimal `db:"target_amount"`
	SavedAmount  decimal.Decimal `db:"saved_amount"`
	DueDate      time.Time       `db:"due_date"`
	CreatedAt    time.Time       `db:"created_at"`
}
