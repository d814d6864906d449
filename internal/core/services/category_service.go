package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/fintrack/fintrack_backend/internal/middleware"
)

// categoryService provides category operations.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
	txnRepo      portsrepo.TransactionRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo, txnRepo: txnRepo}
}

// Ensure categoryService implements the portssvc.CategorySvcFacade interface
var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// validateBudgetLimit enforces that limits are positive and only carried by
// expense categories; limits are advisory, never enforced on spending.
func validateBudgetLimit(categoryType domain.CategoryType, limit *decimal.Decimal) error {
	if limit == nil {
		return nil
	}
	if categoryType != domain.Expense {
		return fmt.Errorf("%w: only expense categories can carry a budget limit", apperrors.ErrValidation)
	}
	if limit.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: budget limit must be positive", apperrors.ErrValidation)
	}
	return nil
}

func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	categoryType := domain.CategoryType(req.Type)
	if err := validateBudgetLimit(categoryType, req.BudgetLimit); err != nil {
		return nil, err
	}

	category := domain.Category{
		CategoryID:  uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Type:        categoryType,
		BudgetLimit: req.BudgetLimit,
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to save category: %w", err)
	}
	return &category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category for update: %w", err)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Type != nil {
		category.Type = domain.CategoryType(*req.Type)
	}
	if req.BudgetLimit != nil {
		category.BudgetLimit = req.BudgetLimit
	}
	if category.Type != domain.Expense {
		category.BudgetLimit = nil
	}
	if err := validateBudgetLimit(category.Type, category.BudgetLimit); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes a category. The storage layer refuses with
// apperrors.ErrConflict while transactions still reference it; nothing cascades.
func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	if err := s.categoryRepo.DeleteCategory(ctx, userID, categoryID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// ResetCategories removes every category of the user. It is refused outright
// while the user still has any transactions, so no per-row conflict surprises
// halfway through.
func (s *categoryService) ResetCategories(ctx context.Context, userID string) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	count, err := s.txnRepo.CountForUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions before category reset: %w", err)
	}
	if count > 0 {
		return 0, fmt.Errorf("%w: %d transactions still reference categories; reset transactions first", apperrors.ErrConflict, count)
	}

	deleted, err := s.categoryRepo.DeleteAllCategories(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to reset categories: %w", err)
	}

	logger.Info("categories reset", slog.Int64("deleted", deleted))
	return deleted, nil
}
