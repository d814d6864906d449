package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

// CreateGoalRequest is the payload for creating a savings goal.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required,max=200"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"required"`
	DueDate      string          `json:"due_date" binding:"required,datetime=2006-01-02"`
}

// DepositGoalRequest is the payload for a goal deposit (a positive delta).
type DepositGoalRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// GoalResponse returns a goal together with its derived progress fields,
// matching the shape the dashboard renders.
type GoalResponse struct {
	GoalID          string          `json:"id"`
	Name            string          `json:"name"`
	TargetAmount    decimal.Decimal `json:"target_amount"`
	SavedAmount     decimal.Decimal `json:"saved_amount"`
	DueDate         string          `json:"due_date"`
	CreatedAt       string          `json:"created_at"`
	Percent         int             `json:"percent"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	Status          string          `json:"status"`
	MonthsLeft      int             `json:"months_left"`
}

// ToGoalResponse converts a goal and its progress snapshot to the response DTO.
func ToGoalResponse(g *domain.Goal, p domain.GoalProgress) GoalResponse {
	return GoalResponse{
		GoalID:          g.GoalID,
		Name:            g.Name,
		TargetAmount:    g.TargetAmount,
		SavedAmount:     g.SavedAmount,
		DueDate:         g.DueDate.Format("2006-01-02"),
		CreatedAt:       g.CreatedAt.Format(time.RFC3339),
		Percent:         p.Percent,
		RemainingAmount: p.RemainingAmount,
		Status:          string(p.Status),
		MonthsLeft:      p.MonthsLeft,
	}
}
