package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a transaction row in the database.
// CategoryName is populated only on reads that join the categories table.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	UserID          string          `db:"user_id"`
	CategoryID      string          `db:"category_id"`
	CategoryName    string          `db:"category_name"`
	Amount          decimal.Decimal `db:"amount"`
	Date            time.Time       `db:"date"`
	IsIncome        bool            `db:"is_income"`
	IsReserved      bool            `db:"is_reserved"`
	ReserveMonths   *int            `db:"reserve_months"`   // Nullable
	ReserveParentID *string         `db:"reserve_parent_id"` // Nullable
	Comment         string          `db:"comment"`
	CreatedAt       time.Time       `db:"created_at"`
}
