package services_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/core/services"
)

func reservedRoot(amount string, months int, day time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        uuid.NewString(),
		CategoryID:    uuid.NewString(),
		Amount:        decimal.RequireFromString(amount),
		Date:          day,
		IsIncome:      true,
		IsReserved:    true,
		ReserveMonths: &months,
		Comment:       "salary",
	}
}

func TestSplitReservedIncome_EvenSplit(t *testing.T) {
	root := reservedRoot("1200.00", 3, date(2025, time.March, 5))

	children := services.SplitReservedIncome(root)
	require.Len(t, children, 2)

	for _, child := range children {
		assert.True(t, child.Amount.Equal(decimal.RequireFromString("400.00")))
		assert.True(t, child.IsIncome)
		assert.False(t, child.IsReserved)
		assert.Nil(t, child.ReserveMonths)
		require.NotNil(t, child.ReserveParentID)
		assert.Equal(t, root.TransactionID, *child.ReserveParentID)
		assert.Equal(t, "salary (reserved)", child.Comment)
	}
	assert.Equal(t, date(2025, time.April, 5), children[0].Date)
	assert.Equal(t, date(2025, time.May, 5), children[1].Date)
}

func TestSplitReservedIncome_RemainderCentGoesToEarliestChild(t *testing.T) {
	root := reservedRoot("1000.00", 3, date(2025, time.March, 5))

	children := services.SplitReservedIncome(root)
	require.Len(t, children, 2)

	// 1000/3 rounds to 333.33; the leftover cent lands on the first child.
	assert.True(t, children[0].Amount.Equal(decimal.RequireFromString("333.34")), "got %s", children[0].Amount)
	assert.True(t, children[1].Amount.Equal(decimal.RequireFromString("333.33")), "got %s", children[1].Amount)
}

func TestSplitReservedIncome_CentExactRoundTrip(t *testing.T) {
	amounts := []string{"1000.00", "1200.00", "0.05", "0.50", "99.99", "12345.67", "100.01"}
	for _, amount := range amounts {
		for months := 2; months <= 12; months++ {
			root := reservedRoot(amount, months, date(2025, time.January, 15))
			children := services.SplitReservedIncome(root)
			require.Len(t, children, months-1, "amount %s months %d", amount, months)

			total := services.RealizedShare(root)
			for _, child := range children {
				total = total.Add(child.Amount)
			}
			assert.True(t, total.Equal(root.Amount),
				"amount %s months %d: realized share plus children sum to %s", amount, months, total)
		}
	}
}

func TestSplitReservedIncome_EndOfMonthDatesClamp(t *testing.T) {
	root := reservedRoot("300.00", 4, date(2025, time.January, 31))

	children := services.SplitReservedIncome(root)
	require.Len(t, children, 3)

	assert.Equal(t, date(2025, time.February, 28), children[0].Date)
	assert.Equal(t, date(2025, time.March, 31), children[1].Date)
	assert.Equal(t, date(2025, time.April, 30), children[2].Date)
}

func TestSplitReservedIncome_NoOpCases(t *testing.T) {
	one := 1
	three := 3
	rootID := uuid.NewString()

	cases := map[string]domain.Transaction{
		"expense":         {Amount: decimal.RequireFromString("50.00"), IsIncome: false, IsReserved: true, ReserveMonths: &three},
		"plain income":    {Amount: decimal.RequireFromString("50.00"), IsIncome: true},
		"single period":   {Amount: decimal.RequireFromString("50.00"), IsIncome: true, IsReserved: true, ReserveMonths: &one},
		"already a child": {Amount: decimal.RequireFromString("50.00"), IsIncome: true, IsReserved: true, ReserveMonths: &three, ReserveParentID: &rootID},
		"missing months":  {Amount: decimal.RequireFromString("50.00"), IsIncome: true, IsReserved: true},
	}
	for name, txn := range cases {
		assert.Nil(t, services.SplitReservedIncome(txn), name)
	}
}

func TestRealizedShare_FloorsNonPositiveMonths(t *testing.T) {
	zero := 0
	txn := domain.Transaction{Amount: decimal.RequireFromString("90.00"), IsIncome: true, IsReserved: true, ReserveMonths: &zero}
	assert.True(t, services.RealizedShare(txn).Equal(decimal.RequireFromString("90.00")))
}
