package dto

import "github.com/fintrack/fintrack_backend/internal/core/domain"

// UpdateSettingsRequest carries partial settings updates; nil fields are untouched.
type UpdateSettingsRequest struct {
	Theme               *string `json:"theme" binding:"omitempty,oneof=light dark"`
	PeriodStartDay      *int    `json:"period_start_day" binding:"omitempty,min=1,max=31"`
	NotifyLimitExceeded *bool   `json:"notify_limit_exceeded"`
	NotifyMonthlyEmail  *bool   `json:"notify_monthly_email"`
}

// SettingsResponse defines the data returned for user settings.
type SettingsResponse struct {
	Theme               string `json:"theme"`
	PeriodStartDay      int    `json:"period_start_day"`
	NotifyLimitExceeded bool   `json:"notify_limit_exceeded"`
	NotifyMonthlyEmail  bool   `json:"notify_monthly_email"`
}

// ToSettingsResponse converts domain settings to the response DTO.
func ToSettingsResponse(s *domain.UserSettings) SettingsResponse {
	return SettingsResponse{
		Theme:               string(s.Theme),
		PeriodStartDay:      s.PeriodStartDay,
		NotifyLimitExceeded: s.NotifyLimitExceeded,
		NotifyMonthlyEmail:  s.NotifyMonthlyEmail,
	}
}
