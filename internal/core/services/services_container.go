package services

import (
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// alerts may be nil, which disables budget limit notifications.
func NewServiceContainer(repos portsrepo.RepositoryProvider, alerts portssvc.AlertPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Settings = NewSettingsService(repos.SettingsRepo)
	container.User = NewUserService(repos.UserRepo, repos.CategoryRepo, repos.SettingsRepo)
	container.Category = NewCategoryService(repos.CategoryRepo, repos.TransactionRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.CategoryRepo, repos.SettingsRepo, alerts)
	container.Summary = NewSummaryService(repos.TransactionRepo, repos.SettingsRepo)
	container.Goal = NewGoalService(repos.GoalRepo)

	return container
}
