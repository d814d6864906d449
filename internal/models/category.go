package models

import "github.com/shopspring/decimal"

// CategoryType distinguishes income categories from expense categories.
type CategoryType string

const (
	Income  CategoryType = "income"
	Expense CategoryType = "expense"
)

// Category represents a category row in the database.
type Category struct {
	CategoryID  string           `db:"category_id"`
	UserID      string           `db:"user_id"`
	Name        string           `db:"name"`
	Type        CategoryType     `db:"type"`
	BudgetLimit *decimal.Decimal `db:"budget_limit"` // Nullable, expense only
}
