package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql repository implementations.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		GoalRepo:        newPgxGoalRepository(dbPool),
		SettingsRepo:    newPgxSettingsRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
