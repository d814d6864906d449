package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrack/fintrack_backend/internal/models"
	"github.com/fintrack/fintrack_backend/internal/utils/mapping"
)

type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(db *pgxpool.Pool) portsrepo.GoalRepositoryFacade {
	return &PgxGoalRepository{BaseRepository{Pool: db}}
}

// Ensure PgxGoalRepository implements portsrepo.GoalRepositoryFacade
var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)
	query := `
		INSERT INTO goals (goal_id, user_id, name, target_amount, saved_amount, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query, m.GoalID, m.UserID, m.Name, m.TargetAmount, m.SavedAmount, m.DueDate, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}
	return nil
}

func scanGoal(row pgx.Row) (models.Goal, error) {
	var m models.Goal
	err := row.Scan(&m.GoalID, &m.UserID, &m.Name, &m.TargetAmount, &m.SavedAmount, &m.DueDate, &m.CreatedAt)
	return m, err
}

func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	query := `
		SELECT goal_id, user_id, name, target_amount, saved_amount, due_date, created_at
		FROM goals
		WHERE user_id = $1 AND goal_id = $2;
	`
	m, err := scanGoal(r.Pool.QueryRow(ctx, query, userID, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal %s: %w", goalID, err)
	}

	d := mapping.ToDomainGoal(m)
	return &d, nil
}

func (r *PgxGoalRepository) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	query := `
		SELECT goal_id, user_id, name, target_amount, saved_amount, due_date, created_at
		FROM goals
		WHERE user_id = $1
		ORDER BY due_date ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	var ms []models.Goal
	for rows.Next() {
		m, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal rows: %w", err)
	}

	return mapping.ToDomainGoalSlice(ms), nil
}

func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, userID, goalID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM goals WHERE user_id = $1 AND goal_id = $2;`, userID, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal %s: %w", goalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// IncrementSavedAmount applies the deposit as a single in-place update, so two
// concurrent deposits both land instead of one overwriting the other.
func (r *PgxGoalRepository) IncrementSavedAmount(ctx context.Context, userID, goalID string, amount decimal.Decimal) (*domain.Goal, error) {
	query := `
		UPDATE goals
		SET saved_amount = saved_amount + $3
		WHERE user_id = $1 AND goal_id = $2
		RETURNING goal_id, user_id, name, target_amount, saved_amount, due_date, created_at;
	`
	m, err := scanGoal(r.Pool.QueryRow(ctx, query, userID, goalID, amount))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to increment goal %s: %w", goalID, err)
	}

	d := mapping.ToDomainGoal(m)
	return &d, nil
}
