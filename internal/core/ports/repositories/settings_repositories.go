package repositories

import (
	"context"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

// SettingsRepositoryFacade defines persistence operations for user settings.
type SettingsRepositoryFacade interface {
	// FindSettings returns the settings row for the user, or apperrors.ErrNotFound.
	FindSettings(ctx context.Context, userID string) (*domain.UserSettings, error)

	// SaveSettings upserts the settings row for settings.UserID.
	SaveSettings(ctx context.Context, settings domain.UserSettings) error
}
