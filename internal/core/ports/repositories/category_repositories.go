package repositories

import (
	"context"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

// CategoryRepositoryFacade defines persistence operations for categories.
type CategoryRepositoryFacade interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category. When transactions still reference it the
	// delete is refused with apperrors.ErrConflict; nothing cascades.
	DeleteCategory(ctx context.Context, userID, categoryID string) error

	// DeleteAllCategories removes every category of the user and reports how many
	// rows went away. Referential protection applies as in DeleteCategory.
	DeleteAllCategories(ctx context.Context, userID string) (int64, error)
}
