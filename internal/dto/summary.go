package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

// CategoryTotalResponse is one per-category breakdown row.
type CategoryTotalResponse struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// DailyBalanceResponse is the running balance as of one active day.
type DailyBalanceResponse struct {
	Date    string          `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// SummaryResponse is the aggregate view for a budget period. Breakdown lists are
// ordered by descending total; daily balances ascend by date.
type SummaryResponse struct {
	Balance             decimal.Decimal         `json:"balance"`
	IncomeTotal         decimal.Decimal         `json:"income_total"`
	ExpenseTotal        decimal.Decimal         `json:"expense_total"`
	IncomeByCategory    []CategoryTotalResponse `json:"income_by_category"`
	ExpensesByCategory  []CategoryTotalResponse `json:"expenses_by_category"`
	DailyBalance        []DailyBalanceResponse  `json:"daily_balance"`
	ReservedFutureTotal decimal.Decimal         `json:"reserved_future_total"`
}

// ToSummaryResponse converts a domain.Summary to its response DTO.
func ToSummaryResponse(s *domain.Summary) SummaryResponse {
	income := make([]CategoryTotalResponse, len(s.IncomeByCategory))
	for i, row := range s.IncomeByCategory {
		income[i] = CategoryTotalResponse{Name: row.Name, Total: row.Total}
	}
	expenses := make([]CategoryTotalResponse, len(s.ExpensesByCategory))
	for i, row := range s.ExpensesByCategory {
		expenses[i] = CategoryTotalResponse{Name: row.Name, Total: row.Total}
	}
	daily := make([]DailyBalanceResponse, len(s.DailyBalance))
	for i, row := range s.DailyBalance {
		daily[i] = DailyBalanceResponse{Date: row.Date, Balance: row.Balance}
	}
	return SummaryResponse{
		Balance:             s.Balance,
		IncomeTotal:         s.IncomeTotal,
		ExpenseTotal:        s.ExpenseTotal,
		IncomeByCategory:    income,
		ExpensesByCategory:  expenses,
		DailyBalance:        daily,
		ReservedFutureTotal: s.ReservedFutureTotal,
	}
}
