package services

import "context"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Summary     SummarySvcFacade
	Category    CategorySvcFacade
	Goal        GoalSvcFacade
	Settings    SettingsSvcFacade
	User        UserSvcFacade
}

// AlertPublisher publishes advisory notifications (e.g. budget limit exceeded)
// to the message broker. Implementations must be safe for concurrent use; a nil
// publisher disables alerts.
type AlertPublisher interface {
	PublishLimitAlert(ctx context.Context, alert LimitAlert) error
}

// LimitAlert describes an expense category whose advisory budget limit was
// crossed within the current budget period.
type LimitAlert struct {
	UserID       string `json:"user_id"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Limit        string `json:"limit"`
	Spent        string `json:"spent"`
	PeriodStart  string `json:"period_start"`
	PeriodEnd    string `json:"period_end"`
}
