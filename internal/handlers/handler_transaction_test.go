package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/fintrack/fintrack_backend/internal/handlers"
	"github.com/fintrack/fintrack_backend/internal/middleware"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) AllocateReserve(ctx context.Context, userID, transactionID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, userID string, month *string, startDay *int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, month, startDay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

func (m *MockTransactionService) ResetTransactions(ctx context.Context, userID string, month *string, startDay *int) (int64, error) {
	args := m.Called(ctx, userID, month, startDay)
	return args.Get(0).(int64), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockTransactionService *MockTransactionService
	jwtSecret              string
	userID                 string
}

func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fintrack-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockTransactionService = new(MockTransactionService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTransactionRoutes(v1, suite.mockTransactionService)
}

func (suite *TransactionHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	categoryID := uuid.NewString()
	isIncome := true
	created := &domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        suite.userID,
		CategoryID:    categoryID,
		CategoryName:  "Salary",
		Amount:        decimal.RequireFromString("500.00"),
		Date:          time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
		IsIncome:      true,
	}

	suite.mockTransactionService.On("CreateTransaction",
		mock.Anything,
		suite.userID,
		mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
			return req.CategoryID == categoryID && req.Date == "2025-03-05"
		}),
	).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", dto.CreateTransactionRequest{
		CategoryID: categoryID,
		Amount:     decimal.RequireFromString("500.00"),
		Date:       "2025-03-05",
		IsIncome:   &isIncome,
	})

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(created.TransactionID, body.TransactionID)
	suite.Equal("2025-03-05", body.Date)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ValidationErrorMapsTo400() {
	categoryID := uuid.NewString()
	isIncome := false
	suite.mockTransactionService.On("CreateTransaction", mock.Anything, suite.userID, mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", dto.CreateTransactionRequest{
		CategoryID: categoryID,
		Amount:     decimal.RequireFromString("10.00"),
		Date:       "2025-03-05",
		IsIncome:   &isIncome,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_PassesPeriodSelectors() {
	month := "2025-03"
	startDay := 10
	suite.mockTransactionService.On("ListTransactions", mock.Anything, suite.userID, &month, &startDay).
		Return([]domain.Transaction{}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions?month=2025-03&start_day=10", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_RejectsBadStartDay() {
	w := suite.doRequest(http.MethodGet, "/api/v1/transactions?start_day=32", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestAllocateReserve_ReturnsChildren() {
	rootID := uuid.NewString()
	children := []domain.Transaction{
		{TransactionID: uuid.NewString(), ReserveParentID: &rootID, Amount: decimal.RequireFromString("400.00")},
		{TransactionID: uuid.NewString(), ReserveParentID: &rootID, Amount: decimal.RequireFromString("400.00")},
	}
	suite.mockTransactionService.On("AllocateReserve", mock.Anything, suite.userID, rootID).
		Return(children, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions/"+rootID+"/allocate", nil)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body, 2)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NotFound() {
	transactionID := uuid.NewString()
	suite.mockTransactionService.On("DeleteTransaction", mock.Anything, suite.userID, transactionID).
		Return(apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/transactions/"+transactionID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestMissingToken_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "ListTransactions")
}

// --- Run Test Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
