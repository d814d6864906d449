package models

import "time"

// UserSettings represents a user settings row in the database.
type UserSettings struct {
	UserID              string    `db:"user_id"`
	Theme               string    `db:"theme"`
	PeriodStartDay      int       `db:"period_start_day"`
	NotifyLimitExceeded bool      `db:"notify_limit_exceeded"`
	NotifyMonthlyEmail  bool      `db:"notify_monthly_email"`
	UpdatedAt           time.Time `db:"updated_at"`
}
