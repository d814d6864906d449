package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
)

// summaryService aggregates transactions into the period summary view.
type summaryService struct {
	txnRepo      portsrepo.TransactionRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(txnRepo portsrepo.TransactionRepositoryFacade, settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.SummarySvcFacade {
	return &summaryService{txnRepo: txnRepo, settingsRepo: settingsRepo}
}

// Ensure summaryService implements the portssvc.SummarySvcFacade interface
var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

// GetSummary aggregates the user's transactions over the resolved period.
//
// Reserved root incomes contribute only their realized per-period share to
// IncomeTotal; the rest of their amount is reported under ReservedFutureTotal.
// The per-category breakdown and the daily balance series count every income at
// face value, reserved roots included. Reservation children dated inside the
// range count as plain income. Roots dated outside the range contribute
// nothing at all.
func (s *summaryService) GetSummary(ctx context.Context, userID string, month *string, startDay *int) (*domain.Summary, error) {
	rng, err := resolveUserRange(ctx, s.settingsRepo, userID, month, startDay)
	if err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.FindTransactionsInRange(ctx, userID, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for summary: %w", err)
	}

	summary := &domain.Summary{
		Balance:             decimal.Zero,
		IncomeTotal:         decimal.Zero,
		ExpenseTotal:        decimal.Zero,
		IncomeByCategory:    []domain.CategoryTotal{},
		ExpensesByCategory:  []domain.CategoryTotal{},
		DailyBalance:        []domain.DailyBalance{},
		ReservedFutureTotal: decimal.Zero,
	}

	incomeByCategory := map[string]decimal.Decimal{}
	expensesByCategory := map[string]decimal.Decimal{}
	deltaByDay := map[string]decimal.Decimal{}

	for i := range txns {
		txn := &txns[i]
		day := txn.Date.Format("2006-01-02")

		if !txn.IsIncome {
			summary.ExpenseTotal = summary.ExpenseTotal.Add(txn.Amount)
			expensesByCategory[txn.CategoryName] = expensesByCategory[txn.CategoryName].Add(txn.Amount)
			deltaByDay[day] = deltaByDay[day].Sub(txn.Amount)
			continue
		}

		realized := txn.Amount
		if txn.IsReservedRoot() {
			realized = RealizedShare(*txn)
			summary.ReservedFutureTotal = summary.ReservedFutureTotal.Add(txn.Amount.Sub(realized))
		}
		summary.IncomeTotal = summary.IncomeTotal.Add(realized)
		// Breakdown and daily series keep face value; only the headline totals
		// defer the reserved remainder.
		incomeByCategory[txn.CategoryName] = incomeByCategory[txn.CategoryName].Add(txn.Amount)
		deltaByDay[day] = deltaByDay[day].Add(txn.Amount)
	}

	summary.Balance = summary.IncomeTotal.Sub(summary.ExpenseTotal)
	summary.IncomeByCategory = sortedTotals(incomeByCategory)
	summary.ExpensesByCategory = sortedTotals(expensesByCategory)
	summary.DailyBalance = runningBalance(deltaByDay)

	return summary, nil
}

// sortedTotals flattens a per-category accumulator into rows ordered by
// descending total, with ties broken by name for a stable output.
func sortedTotals(byCategory map[string]decimal.Decimal) []domain.CategoryTotal {
	rows := make([]domain.CategoryTotal, 0, len(byCategory))
	for name, total := range byCategory {
		rows = append(rows, domain.CategoryTotal{Name: name, Total: total})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Total.Equal(rows[j].Total) {
			return rows[i].Total.GreaterThan(rows[j].Total)
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// runningBalance turns per-day net deltas into a cumulative series over the
// days that had activity, ascending by date.
func runningBalance(deltaByDay map[string]decimal.Decimal) []domain.DailyBalance {
	days := make([]string, 0, len(deltaByDay))
	for day := range deltaByDay {
		days = append(days, day)
	}
	sort.Strings(days)

	series := make([]domain.DailyBalance, 0, len(days))
	balance := decimal.Zero
	for _, day := range days {
		balance = balance.Add(deltaByDay[day])
		series = append(series, domain.DailyBalance{Date: day, Balance: balance})
	}
	return series
}
