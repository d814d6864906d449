package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single income or expense operation belonging to a user.
//
// A transaction is either a root (ReserveParentID == nil) or a child generated by
// the reserve allocator (ReserveParentID set). Children are never reserved
// themselves and never carry ReserveMonths.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	UserID          string          `json:"userID"`
	CategoryID      string          `json:"categoryID"`
	CategoryName    string          `json:"categoryName,omitempty"` // Populated on reads via join
	Amount          decimal.Decimal `json:"amount"`                 // Positive; sign is carried by IsIncome
	Date            time.Time       `json:"date"`                   // Calendar date, no time component
	IsIncome        bool            `json:"isIncome"`
	IsReserved      bool            `json:"isReserved"`
	ReserveMonths   *int            `json:"reserveMonths,omitempty"`
	ReserveParentID *string         `json:"reserveParentID,omitempty"`
	Comment         string          `json:"comment"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// IsReservedRoot reports whether this transaction is an income reservation that
// realizes only its per-period share in its own period.
func (t Transaction) IsReservedRoot() bool {
	return t.IsIncome && t.IsReserved && t.ReserveParentID == nil
}

// ReserveMonthsOrOne returns the reservation span, flooring non-positive or
// missing values to 1 so aggregation never divides by zero.
func (t Transaction) ReserveMonthsOrOne() int {
	if t.ReserveMonths == nil || *t.ReserveMonths <= 0 {
		return 1
	}
	return *t.ReserveMonths
}
