package domain

import "time"

// Theme selects the frontend color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// UserSettings holds per-user application settings. PeriodStartDay shifts the
// budget period away from the calendar month; 1 means calendar months.
type UserSettings struct {
	UserID              string    `json:"userID"`
	Theme               Theme     `json:"theme"`
	PeriodStartDay      int       `json:"periodStartDay"` // 1..31, clamped per month at resolution time
	NotifyLimitExceeded bool      `json:"notifyLimitExceeded"`
	NotifyMonthlyEmail  bool      `json:"notifyMonthlyEmail"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// DefaultSettings returns the settings a freshly registered user starts with.
func DefaultSettings(userID string) UserSettings {
	return UserSettings{
		UserID:              userID,
		Theme:               ThemeLight,
		PeriodStartDay:      1,
		NotifyLimitExceeded: true,
		NotifyMonthlyEmail:  false,
	}
}
