package mapping

import (
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/models"
)

// ToModelUserSettings converts domain UserSettings to model UserSettings
func ToModelUserSettings(d domain.UserSettings) models.UserSettings {
	return models.UserSettings{
		UserID:              d.UserID,
		Theme:               string(d.Theme),
		PeriodStartDay:      d.PeriodStartDay,
		NotifyLimitExceeded: d.NotifyLimitExceeded,
		NotifyMonthlyEmail:  d.NotifyMonthlyEmail,
		UpdatedAt:           d.UpdatedAt,
	}
}

// ToDomainUserSettings converts model UserSettings to domain UserSettings
func ToDomainUserSettings(m models.UserSettings) domain.UserSettings {
	return domain.UserSettings{
		UserID:              m.UserID,
		Theme:               domain.Theme(m.Theme),
		PeriodStartDay:      m.PeriodStartDay,
		NotifyLimitExceeded: m.NotifyLimitExceeded,
		NotifyMonthlyEmail:  m.NotifyMonthlyEmail,
		UpdatedAt:           m.UpdatedAt,
	}
}
