package services

import (
	"context"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/dto"
)

// SettingsSvcFacade defines the service surface for user settings.
type SettingsSvcFacade interface {
	// GetSettings returns the user's settings, creating the defaults on first access.
	GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error)
	UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.UserSettings, error)
}
