package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/fintrack/fintrack_backend/internal/middleware"
)

// goalService provides savings goal operations.
type goalService struct {
	goalRepo portsrepo.GoalRepositoryFacade
}

// NewGoalService creates a new GoalService.
func NewGoalService(goalRepo portsrepo.GoalRepositoryFacade) portssvc.GoalSvcFacade {
	return &goalService{goalRepo: goalRepo}
}

// Ensure goalService implements the portssvc.GoalSvcFacade interface
var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error) {
	if req.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: target_amount must be positive", apperrors.ErrValidation)
	}

	dueDate, err := time.ParseInLocation("2006-01-02", req.DueDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: due_date must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	goal := domain.Goal{
		GoalID:       uuid.NewString(),
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		SavedAmount:  decimal.Zero,
		DueDate:      dueDate,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}
	return &goal, nil
}

func (s *goalService) GetGoalByID(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return goal, nil
}

func (s *goalService) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	goals, err := s.goalRepo.ListGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	if goals == nil {
		return []domain.Goal{}, nil
	}
	return goals, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	if err := s.goalRepo.DeleteGoal(ctx, userID, goalID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}

// DepositGoal adds a positive amount to the goal's saved total. The increment
// happens in-place at the storage layer so concurrent deposits both land.
// Deposits are deliberately not idempotent: retrying adds the amount again.
func (s *goalService) DepositGoal(ctx context.Context, userID, goalID string, amount decimal.Decimal) (*domain.Goal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: deposit amount must be positive", apperrors.ErrValidation)
	}

	goal, err := s.goalRepo.IncrementSavedAmount(ctx, userID, goalID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to deposit into goal: %w", err)
	}

	logger.Info("goal deposit",
		slog.String("goal_id", goalID),
		slog.String("amount", amount.StringFixed(2)),
		slog.String("saved_amount", goal.SavedAmount.StringFixed(2)),
	)
	return goal, nil
}

// Progress derives the percent/remaining/status/months-left view of a goal.
func (s *goalService) Progress(goal domain.Goal) domain.GoalProgress {
	return GoalProgressAt(goal, time.Now().UTC())
}
