package domain

import "github.com/shopspring/decimal"

// CategoryType distinguishes income categories from expense categories.
type CategoryType string

const (
	Income  CategoryType = "income"
	Expense CategoryType = "expense"
)

// Category is a user-scoped label for transactions. Expense categories may carry
// an advisory budget limit; it is never enforced, only reported on.
type Category struct {
	CategoryID  string           `json:"categoryID"`
	UserID      string           `json:"userID"`
	Name        string           `json:"name"`
	Type        CategoryType     `json:"type"`
	BudgetLimit *decimal.Decimal `json:"budgetLimit,omitempty"` // Expense only, advisory
}
