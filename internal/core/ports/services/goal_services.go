package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/dto"
)

// GoalSvcFacade defines the service surface for savings goals.
type GoalSvcFacade interface {
	CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error)
	GetGoalByID(ctx context.Context, userID, goalID string) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID string) error

	// DepositGoal atomically adds a positive amount to the goal's saved amount.
	// Deposits are deliberately not idempotent: a retry adds the amount again.
	DepositGoal(ctx context.Context, userID, goalID string, amount decimal.Decimal) (*domain.Goal, error)

	// Progress derives the percent/remaining/status/months-left view of a goal.
	Progress(goal domain.Goal) domain.GoalProgress
}
