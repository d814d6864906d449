package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

// CreateTransactionRequest is the payload for creating an income or expense.
// Date is a calendar date (YYYY-MM-DD); no time component is accepted.
type CreateTransactionRequest struct {
	CategoryID    string          `json:"category" binding:"required,uuid"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	IsIncome      *bool           `json:"is_income" binding:"required"`
	IsReserved    bool            `json:"is_reserved"`
	ReserveMonths *int            `json:"reserve_months" binding:"omitempty,gt=0"`
	Comment       string          `json:"comment" binding:"max=1000"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string          `json:"id"`
	CategoryID      string          `json:"category"`
	CategoryName    string          `json:"category_name,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Date            string          `json:"date"`
	IsIncome        bool            `json:"is_income"`
	IsReserved      bool            `json:"is_reserved"`
	ReserveMonths   *int            `json:"reserve_months,omitempty"`
	ReserveParentID *string         `json:"reserve_parent,omitempty"`
	Comment         string          `json:"comment"`
	CreatedAt       string          `json:"created_at"`
}

// ListTransactionsResponse wraps a period-scoped transaction listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ResetTransactionsResponse reports how many transactions a reset removed.
type ResetTransactionsResponse struct {
	DeletedTransactions int64   `json:"deleted_transactions"`
	Month               *string `json:"month"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		CategoryID:      t.CategoryID,
		CategoryName:    t.CategoryName,
		Amount:          t.Amount,
		Date:            t.Date.Format("2006-01-02"),
		IsIncome:        t.IsIncome,
		IsReserved:      t.IsReserved,
		ReserveMonths:   t.ReserveMonths,
		ReserveParentID: t.ReserveParentID,
		Comment:         t.Comment,
		CreatedAt:       t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
