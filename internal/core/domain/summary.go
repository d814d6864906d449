package domain

import "github.com/shopspring/decimal"

// CategoryTotal is one row of a per-category breakdown, ordered by descending total.
type CategoryTotal struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// DailyBalance is the running balance as of one day with activity, ISO-dated.
type DailyBalance struct {
	Date    string          `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// Summary is the aggregate view over one budget period (or all time).
//
// Reserved root incomes contribute only their per-period share to IncomeTotal;
// the remainder is reported in ReservedFutureTotal and excluded from Balance.
type Summary struct {
	Balance             decimal.Decimal `json:"balance"`
	IncomeTotal         decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal        decimal.Decimal `json:"expenseTotal"`
	IncomeByCategory    []CategoryTotal `json:"incomeByCategory"`
	ExpensesByCategory  []CategoryTotal `json:"expensesByCategory"`
	DailyBalance        []DailyBalance  `json:"dailyBalance"`
	ReservedFutureTotal decimal.Decimal `json:"reservedFutureTotal"`
}
