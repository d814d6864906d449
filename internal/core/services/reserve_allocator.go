package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

var oneCent = decimal.NewFromFloat(0.01)

// SplitReservedIncome generates the future-period child transactions for a
// reserved income root.
//
// The root itself stands for the current period (offset 0); children cover
// offsets 1..months-1, each dated root.Date stepped forward by the offset with
// the day clamped to the target month. Every child gets the half-up rounded
// per-period share, and the residual cents (root amount minus months times the
// share) are settled one cent at a time against the earliest children, so that
// share + sum(children) equals the root amount exactly.
//
// Returns nil for anything that is not a reserved income root spanning more
// than one month: plain incomes, expenses, children, and single-period reserves
// never split.
func SplitReservedIncome(root domain.Transaction) []domain.Transaction {
	if !root.IsReservedRoot() {
		return nil
	}
	months := root.ReserveMonthsOrOne()
	if months <= 1 {
		return nil
	}

	monthsDec := decimal.NewFromInt(int64(months))
	per := root.Amount.DivRound(monthsDec, 2)
	// Residual cents may be negative when the share rounded up.
	remainderCents := root.Amount.Sub(per.Mul(monthsDec)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	children := make([]domain.Transaction, 0, months-1)
	for offset := 1; offset < months; offset++ {
		amount := per
		if remainderCents > 0 {
			amount = amount.Add(oneCent)
			remainderCents--
		} else if remainderCents < 0 {
			amount = amount.Sub(oneCent)
			remainderCents++
		}

		children = append(children, domain.Transaction{
			TransactionID:   uuid.NewString(),
			UserID:          root.UserID,
			CategoryID:      root.CategoryID,
			Amount:          amount,
			Date:            addMonthsClamped(root.Date, offset),
			IsIncome:        true,
			IsReserved:      false,
			ReserveParentID: &root.TransactionID,
			Comment:         root.Comment + " (reserved)",
			CreatedAt:       root.CreatedAt,
		})
	}
	return children
}

// RealizedShare returns the portion of a reserved root income that counts as
// available in its own period: the half-up rounded amount/months.
func RealizedShare(root domain.Transaction) decimal.Decimal {
	return root.Amount.DivRound(decimal.NewFromInt(int64(root.ReserveMonthsOrOne())), 2)
}
