package mapping

import (
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		UserID:          d.UserID,
		CategoryID:      d.CategoryID,
		CategoryName:    d.CategoryName,
		Amount:          d.Amount,
		Date:            d.Date,
		IsIncome:        d.IsIncome,
		IsReserved:      d.IsReserved,
		ReserveMonths:   d.ReserveMonths,
		ReserveParentID: d.ReserveParentID,
		Comment:         d.Comment,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		UserID:          m.UserID,
		CategoryID:      m.CategoryID,
		CategoryName:    m.CategoryName,
		Amount:          m.Amount,
		Date:            m.Date,
		IsIncome:        m.IsIncome,
		IsReserved:      m.IsReserved,
		ReserveMonths:   m.ReserveMonths,
		ReserveParentID: m.ReserveParentID,
		Comment:         m.Comment,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
