package services

import (
	"context"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/dto"
)

// CategorySvcFacade defines the service surface for categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory refuses with apperrors.ErrConflict while transactions still
	// reference the category.
	DeleteCategory(ctx context.Context, userID, categoryID string) error

	// ResetCategories removes every category; refused while the user still has any
	// transactions.
	ResetCategories(ctx context.Context, userID string) (int64, error)
}
