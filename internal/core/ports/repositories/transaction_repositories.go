package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

// TransactionRepositoryFacade defines persistence operations for transactions.
// All reads are owner-scoped; a nil range means all time.
type TransactionRepositoryFacade interface {
	// SaveTransactionWithChildren persists a root transaction together with its
	// generated reservation children inside a single database transaction.
	// Children may be empty. Any failure rolls back the whole operation.
	SaveTransactionWithChildren(ctx context.Context, txn domain.Transaction, children []domain.Transaction) error

	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
	FindTransactionsInRange(ctx context.Context, userID string, rng *domain.PeriodRange) ([]domain.Transaction, error)

	// FindChildren returns the reservation children of a root, ordered by date.
	FindChildren(ctx context.Context, rootID string) ([]domain.Transaction, error)

	// SaveChildren persists generated children for an already-saved root in one
	// database transaction.
	SaveChildren(ctx context.Context, children []domain.Transaction) error

	// DeleteTransaction removes a transaction owned by userID; deleting a root
	// cascades to its children. Returns apperrors.ErrNotFound when no row matches.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error

	// DeleteTransactionsInRange removes all of a user's transactions in the range
	// (all of them when rng is nil) and reports how many rows went away.
	DeleteTransactionsInRange(ctx context.Context, userID string, rng *domain.PeriodRange) (int64, error)

	// CountForUser reports how many transactions the user has in total.
	CountForUser(ctx context.Context, userID string) (int64, error)

	// SumExpensesByCategoryInRange totals expense amounts for one category within
	// a range, for advisory budget-limit checks.
	SumExpensesByCategoryInRange(ctx context.Context, userID, categoryID string, rng domain.PeriodRange) (decimal.Decimal, error)
}
