package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
)

// settingsService provides per-user settings with get-or-create semantics.
type settingsService struct {
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

// Ensure settingsService implements the portssvc.SettingsSvcFacade interface
var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// GetSettings returns the user's settings, creating the defaults on first
// access so callers always see a row.
func (s *settingsService) GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	settings, err := s.settingsRepo.FindSettings(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	defaults := domain.DefaultSettings(userID)
	defaults.UpdatedAt = time.Now().UTC()
	if err := s.settingsRepo.SaveSettings(ctx, defaults); err != nil {
		return nil, fmt.Errorf("failed to create default settings: %w", err)
	}
	return &defaults, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.UserSettings, error) {
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Theme != nil {
		settings.Theme = domain.Theme(*req.Theme)
	}
	if req.PeriodStartDay != nil {
		if *req.PeriodStartDay < 1 || *req.PeriodStartDay > 31 {
			return nil, fmt.Errorf("%w: period_start_day must be between 1 and 31", apperrors.ErrValidation)
		}
		settings.PeriodStartDay = *req.PeriodStartDay
	}
	if req.NotifyLimitExceeded != nil {
		settings.NotifyLimitExceeded = *req.NotifyLimitExceeded
	}
	if req.NotifyMonthlyEmail != nil {
		settings.NotifyMonthlyEmail = *req.NotifyMonthlyEmail
	}
	settings.UpdatedAt = time.Now().UTC()

	if err := s.settingsRepo.SaveSettings(ctx, *settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings, nil
}
