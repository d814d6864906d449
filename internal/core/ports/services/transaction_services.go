package services

import (
	"context"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/dto"
)

// TransactionSvcFacade defines the service surface for transactions.
//
// month selectors are "YYYY-MM" strings; a nil month means all time. A nil
// startDay falls back to the user's configured period start day.
type TransactionSvcFacade interface {
	// CreateTransaction validates the payload, persists the root and, for reserved
	// incomes spanning more than one month, materializes the reservation children
	// in the same storage transaction.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// AllocateReserve re-runs allocation for an existing reserved root. It is
	// idempotent: if children already exist nothing new is created.
	AllocateReserve(ctx context.Context, userID, transactionID string) ([]domain.Transaction, error)

	ListTransactions(ctx context.Context, userID string, month *string, startDay *int) ([]domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
	ResetTransactions(ctx context.Context, userID string, month *string, startDay *int) (int64, error)
}
