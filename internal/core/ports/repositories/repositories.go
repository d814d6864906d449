package repositories

// RepositoryProvider bundles all repository implementations for dependency injection.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryFacade
	CategoryRepo    CategoryRepositoryFacade
	GoalRepo        GoalRepositoryFacade
	SettingsRepo    SettingsRepositoryFacade
	UserRepo        UserRepositoryFacade
}
