package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/core/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockCategoryRepo *MockCategoryRepository
	mockSettingsRepo *MockSettingsRepository
	mockAlerts       *MockAlertPublisher
	service          portssvc.TransactionSvcFacade
	userID           string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.mockAlerts = new(MockAlertPublisher)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockCategoryRepo, suite.mockSettingsRepo, suite.mockAlerts)
	suite.userID = uuid.NewString()
}

func (suite *TransactionServiceTestSuite) incomeCategory() *domain.Category {
	return &domain.Category{
		CategoryID: uuid.NewString(),
		UserID:     suite.userID,
		Name:       "Salary",
		Type:       domain.Income,
	}
}

func (suite *TransactionServiceTestSuite) expenseCategory(limit *decimal.Decimal) *domain.Category {
	return &domain.Category{
		CategoryID:  uuid.NewString(),
		UserID:      suite.userID,
		Name:        "Food",
		Type:        domain.Expense,
		BudgetLimit: limit,
	}
}

func boolPtr(b bool) *bool { return &b }

func (suite *TransactionServiceTestSuite) TestCreateTransaction_PlainIncome() {
	ctx := context.Background()
	category := suite.incomeCategory()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, category.CategoryID).Return(category, nil).Once()
	suite.mockTxnRepo.On("SaveTransactionWithChildren", ctx, mock.AnythingOfType("domain.Transaction"), mock.MatchedBy(func(children []domain.Transaction) bool {
		return len(children) == 0
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		CategoryID: category.CategoryID,
		Amount:     dec("500.00"),
		Date:       "2025-03-05",
		IsIncome:   boolPtr(true),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.True(txn.IsIncome)
	suite.False(txn.IsReserved)
	suite.Nil(txn.ReserveMonths)
	suite.Equal(category.Name, txn.CategoryName)
	suite.Equal(date(2025, time.March, 5), txn.Date)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ReservedIncomeCreatesChildren() {
	ctx := context.Background()
	category := suite.incomeCategory()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, category.CategoryID).Return(category, nil).Once()

	months := 3
	suite.mockTxnRepo.On("SaveTransactionWithChildren", ctx, mock.AnythingOfType("domain.Transaction"), mock.MatchedBy(func(children []domain.Transaction) bool {
		if len(children) != 2 {
			return false
		}
		sum := children[0].Amount.Add(children[1].Amount)
		return sum.Equal(dec("800.00"))
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		CategoryID:    category.CategoryID,
		Amount:        dec("1200.00"),
		Date:          "2025-03-01",
		IsIncome:      boolPtr(true),
		IsReserved:    true,
		ReserveMonths: &months,
	})

	suite.Require().NoError(err)
	suite.True(txn.IsReservedRoot())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()

	_, err := suite.service.CreateTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		CategoryID: uuid.NewString(),
		Amount:     dec("-10.00"),
		Date:       "2025-03-05",
		IsIncome:   boolPtr(false),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactionWithChildren")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsCategoryTypeMismatch() {
	ctx := context.Background()
	category := suite.incomeCategory()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, category.CategoryID).Return(category, nil).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		CategoryID: category.CategoryID,
		Amount:     dec("10.00"),
		Date:       "2025-03-05",
		IsIncome:   boolPtr(false), // expense against an income category
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsReservedExpense() {
	ctx := context.Background()
	category := suite.expenseCategory(nil)
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, category.CategoryID).Return(category, nil).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		CategoryID: category.CategoryID,
		Amount:     dec("10.00"),
		Date:       "2025-03-05",
		IsIncome:   boolPtr(false),
		IsReserved: true,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsReservedWithoutMonths() {
	ctx := context.Background()
	category := suite.incomeCategory()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, category.CategoryID).Return(category, nil).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		CategoryID: category.CategoryID,
		Amount:     dec("10.00"),
		Date:       "2025-03-05",
		IsIncome:   boolPtr(true),
		IsReserved: true,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ForeignCategorySurfacesNotFound() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, categoryID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		CategoryID: categoryID,
		Amount:     dec("10.00"),
		Date:       "2025-03-05",
		IsIncome:   boolPtr(true),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ExpenseOverLimitPublishesAlert() {
	ctx := context.Background()
	limit := dec("100.00")
	category := suite.expenseCategory(&limit)
	settings := domain.DefaultSettings(suite.userID)

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, category.CategoryID).Return(category, nil).Once()
	suite.mockTxnRepo.On("SaveTransactionWithChildren", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockSettingsRepo.On("FindSettings", ctx, suite.userID).Return(&settings, nil).Once()
	suite.mockTxnRepo.On("SumExpensesByCategoryInRange", ctx, suite.userID, category.CategoryID, mock.Anything).Return(dec("130.00"), nil).Once()
	suite.mockAlerts.On("PublishLimitAlert", ctx, mock.MatchedBy(func(alert portssvc.LimitAlert) bool {
		return alert.CategoryID == category.CategoryID && alert.Spent == "130.00" && alert.Limit == "100.00"
	})).Return(nil).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		CategoryID: category.CategoryID,
		Amount:     dec("30.00"),
		Date:       "2025-03-05",
		IsIncome:   boolPtr(false),
	})

	suite.Require().NoError(err)
	suite.mockAlerts.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnderLimitPublishesNothing() {
	ctx := context.Background()
	limit := dec("100.00")
	category := suite.expenseCategory(&limit)
	settings := domain.DefaultSettings(suite.userID)

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, category.CategoryID).Return(category, nil).Once()
	suite.mockTxnRepo.On("SaveTransactionWithChildren", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockSettingsRepo.On("FindSettings", ctx, suite.userID).Return(&settings, nil).Once()
	suite.mockTxnRepo.On("SumExpensesByCategoryInRange", ctx, suite.userID, category.CategoryID, mock.Anything).Return(dec("40.00"), nil).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		CategoryID: category.CategoryID,
		Amount:     dec("40.00"),
		Date:       "2025-03-05",
		IsIncome:   boolPtr(false),
	})

	suite.Require().NoError(err)
	suite.mockAlerts.AssertNotCalled(suite.T(), "PublishLimitAlert")
}

func (suite *TransactionServiceTestSuite) TestAllocateReserve_Idempotent() {
	ctx := context.Background()
	months := 3
	rootID := uuid.NewString()
	root := &domain.Transaction{
		TransactionID: rootID,
		UserID:        suite.userID,
		Amount:        dec("900.00"),
		Date:          date(2025, time.March, 1),
		IsIncome:      true,
		IsReserved:    true,
		ReserveMonths: &months,
	}
	existing := []domain.Transaction{{TransactionID: uuid.NewString()}, {TransactionID: uuid.NewString()}}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, rootID).Return(root, nil).Once()
	suite.mockTxnRepo.On("FindChildren", ctx, rootID).Return(existing, nil).Once()

	children, err := suite.service.AllocateReserve(ctx, suite.userID, rootID)

	suite.Require().NoError(err)
	suite.Equal(existing, children)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveChildren")
}

func (suite *TransactionServiceTestSuite) TestAllocateReserve_GeneratesMissingChildren() {
	ctx := context.Background()
	months := 3
	rootID := uuid.NewString()
	root := &domain.Transaction{
		TransactionID: rootID,
		UserID:        suite.userID,
		Amount:        dec("900.00"),
		Date:          date(2025, time.March, 1),
		IsIncome:      true,
		IsReserved:    true,
		ReserveMonths: &months,
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, rootID).Return(root, nil).Once()
	suite.mockTxnRepo.On("FindChildren", ctx, rootID).Return([]domain.Transaction{}, nil).Once()
	suite.mockTxnRepo.On("SaveChildren", ctx, mock.MatchedBy(func(children []domain.Transaction) bool {
		return len(children) == 2
	})).Return(nil).Once()

	children, err := suite.service.AllocateReserve(ctx, suite.userID, rootID)

	suite.Require().NoError(err)
	suite.Len(children, 2)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestAllocateReserve_RejectsPlainIncome() {
	ctx := context.Background()
	rootID := uuid.NewString()
	root := &domain.Transaction{TransactionID: rootID, UserID: suite.userID, Amount: dec("900.00"), IsIncome: true}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, rootID).Return(root, nil).Once()

	_, err := suite.service.AllocateReserve(ctx, suite.userID, rootID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestResetTransactions_ScopedToPeriod() {
	ctx := context.Background()
	settings := domain.DefaultSettings(suite.userID)
	suite.mockSettingsRepo.On("FindSettings", ctx, suite.userID).Return(&settings, nil)
	suite.mockTxnRepo.On("DeleteTransactionsInRange", ctx, suite.userID, mock.MatchedBy(func(rng *domain.PeriodRange) bool {
		return rng != nil && rng.Start.Equal(date(2025, time.March, 1)) && rng.End.Equal(date(2025, time.April, 1))
	})).Return(int64(4), nil).Once()

	month := "2025-03"
	deleted, err := suite.service.ResetTransactions(ctx, suite.userID, &month, nil)

	suite.Require().NoError(err)
	suite.Equal(int64(4), deleted)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
