package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Name        string           `json:"name" binding:"required,max=100"`
	Type        string           `json:"type" binding:"required,oneof=income expense"`
	BudgetLimit *decimal.Decimal `json:"limit"`
}

// UpdateCategoryRequest carries partial updates; nil fields are left untouched.
type UpdateCategoryRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=100"`
	Type        *string          `json:"type" binding:"omitempty,oneof=income expense"`
	BudgetLimit *decimal.Decimal `json:"limit"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID  string           `json:"id"`
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	BudgetLimit *decimal.Decimal `json:"limit,omitempty"`
}

// ResetCategoriesResponse reports how many categories a reset removed.
type ResetCategoriesResponse struct {
	DeletedCategories int64 `json:"deleted_categories"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		Type:        string(c.Type),
		BudgetLimit: c.BudgetLimit,
	}
}

// ToCategoryResponses converts a slice of domain categories.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}
