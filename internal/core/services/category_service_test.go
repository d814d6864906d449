package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/core/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	mockTxnRepo      *MockTransactionRepository
	service          portssvc.CategorySvcFacade
	userID           string
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewCategoryService(suite.mockCategoryRepo, suite.mockTxnRepo)
	suite.userID = uuid.NewString()
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_ExpenseWithLimit() {
	ctx := context.Background()
	limit := dec("500.00")
	suite.mockCategoryRepo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.UserID == suite.userID && c.Type == domain.Expense && c.BudgetLimit != nil && c.BudgetLimit.Equal(limit)
	})).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, suite.userID, dto.CreateCategoryRequest{
		Name:        "Food",
		Type:        "expense",
		BudgetLimit: &limit,
	})

	suite.Require().NoError(err)
	suite.Equal("Food", category.Name)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_RejectsLimitOnIncome() {
	ctx := context.Background()
	limit := dec("500.00")

	_, err := suite.service.CreateCategory(ctx, suite.userID, dto.CreateCategoryRequest{
		Name:        "Salary",
		Type:        "income",
		BudgetLimit: &limit,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "SaveCategory")
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_RejectsNonPositiveLimit() {
	ctx := context.Background()
	limit := dec("-1.00")

	_, err := suite.service.CreateCategory(ctx, suite.userID, dto.CreateCategoryRequest{
		Name:        "Food",
		Type:        "expense",
		BudgetLimit: &limit,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_SwitchToIncomeClearsLimit() {
	ctx := context.Background()
	limit := dec("500.00")
	categoryID := uuid.NewString()
	existing := &domain.Category{
		CategoryID:  categoryID,
		UserID:      suite.userID,
		Name:        "Food",
		Type:        domain.Expense,
		BudgetLimit: &limit,
	}
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, categoryID).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("UpdateCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Type == domain.Income && c.BudgetLimit == nil
	})).Return(nil).Once()

	newType := "income"
	updated, err := suite.service.UpdateCategory(ctx, suite.userID, categoryID, dto.UpdateCategoryRequest{Type: &newType})

	suite.Require().NoError(err)
	suite.Nil(updated.BudgetLimit)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_ConflictSurfaces() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	suite.mockCategoryRepo.On("DeleteCategory", ctx, suite.userID, categoryID).Return(apperrors.ErrConflict).Once()

	err := suite.service.DeleteCategory(ctx, suite.userID, categoryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *CategoryServiceTestSuite) TestResetCategories_RefusedWhileTransactionsExist() {
	ctx := context.Background()
	suite.mockTxnRepo.On("CountForUser", ctx, suite.userID).Return(int64(7), nil).Once()

	_, err := suite.service.ResetCategories(ctx, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "DeleteAllCategories")
}

func (suite *CategoryServiceTestSuite) TestResetCategories_DeletesWhenClean() {
	ctx := context.Background()
	suite.mockTxnRepo.On("CountForUser", ctx, suite.userID).Return(int64(0), nil).Once()
	suite.mockCategoryRepo.On("DeleteAllCategories", ctx, suite.userID).Return(int64(9), nil).Once()

	deleted, err := suite.service.ResetCategories(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(9), deleted)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
