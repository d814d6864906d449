package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrack/fintrack_backend/internal/models"
	"github.com/fintrack/fintrack_backend/internal/utils/mapping"
)

type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(db *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository{Pool: db}}
}

// Ensure PgxSettingsRepository implements portsrepo.SettingsRepositoryFacade
var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

func (r *PgxSettingsRepository) FindSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	query := `
		SELECT user_id, theme, period_start_day, notify_limit_exceeded, notify_monthly_email, updated_at
		FROM user_settings
		WHERE user_id = $1;
	`
	var m models.UserSettings
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.Theme,
		&m.PeriodStartDay,
		&m.NotifyLimitExceeded,
		&m.NotifyMonthlyEmail,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find settings for user %s: %w", userID, err)
	}

	d := mapping.ToDomainUserSettings(m)
	return &d, nil
}

func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.UserSettings) error {
	m := mapping.ToModelUserSettings(settings)
	query := `
		INSERT INTO user_settings (user_id, theme, period_start_day, notify_limit_exceeded, notify_monthly_email, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			theme = EXCLUDED.theme,
			period_start_day = EXCLUDED.period_start_day,
			notify_limit_exceeded = EXCLUDED.notify_limit_exceeded,
			notify_monthly_email = EXCLUDED.notify_monthly_email,
			updated_at = EXCLUDED.updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Theme,
		m.PeriodStartDay,
		m.NotifyLimitExceeded,
		m.NotifyMonthlyEmail,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings for user %s: %w", settings.UserID, err)
	}
	return nil
}
