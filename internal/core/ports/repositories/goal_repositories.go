package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

// GoalRepositoryFacade defines persistence operations for savings goals.
type GoalRepositoryFacade interface {
	SaveGoal(ctx context.Context, goal domain.Goal) error
	FindGoalByID(ctx context.Context, userID, goalID string) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID string) error

	// IncrementSavedAmount adds amount to the goal's saved_amount as a single
	// in-place update so concurrent deposits never lose writes. Returns the goal
	// after the increment, or apperrors.ErrNotFound when no owned row matches.
	IncrementSavedAmount(ctx context.Context, userID, goalID string, amount decimal.Decimal) (*domain.Goal, error)
}
