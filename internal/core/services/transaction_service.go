package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/fintrack/fintrack_backend/internal/middleware"
)

// transactionService provides transaction creation, listing and the reserve
// allocation entry points.
type transactionService struct {
	txnRepo      portsrepo.TransactionRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
	alerts       portssvc.AlertPublisher // nil disables limit alerts
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade, settingsRepo portsrepo.SettingsRepositoryFacade, alerts portssvc.AlertPublisher) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:      txnRepo,
		categoryRepo: categoryRepo,
		settingsRepo: settingsRepo,
		alerts:       alerts,
	}
}

// Ensure transactionService implements the portssvc.TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates the payload, persists the root and, for reserved
// incomes spanning more than one month, its generated children in one storage
// transaction.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	isIncome := req.IsIncome != nil && *req.IsIncome

	// Owner-scoped lookup: a category belonging to someone else surfaces as not found.
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category for transaction: %w", err)
	}
	if (category.Type == domain.Income) != isIncome {
		return nil, fmt.Errorf("%w: category type %s does not match transaction direction", apperrors.ErrValidation, category.Type)
	}

	if req.IsReserved && !isIncome {
		return nil, fmt.Errorf("%w: only income can be reserved", apperrors.ErrValidation)
	}

	var reserveMonths *int
	if req.IsReserved {
		if req.ReserveMonths == nil || *req.ReserveMonths <= 0 {
			return nil, fmt.Errorf("%w: reserve_months must be a positive integer for reserved income", apperrors.ErrValidation)
		}
		months := *req.ReserveMonths
		reserveMonths = &months
	}
	// reserve_months is forced to null when not reserved.

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		CategoryID:    category.CategoryID,
		CategoryName:  category.Name,
		Amount:        req.Amount,
		Date:          date,
		IsIncome:      isIncome,
		IsReserved:    req.IsReserved,
		ReserveMonths: reserveMonths,
		Comment:       req.Comment,
		CreatedAt:     time.Now().UTC(),
	}

	children := SplitReservedIncome(txn)

	if err := s.txnRepo.SaveTransactionWithChildren(ctx, txn, children); err != nil {
		logger.Error("failed to save transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	logger.Info("transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.Bool("is_income", txn.IsIncome),
		slog.Int("children", len(children)),
	)

	if !isIncome {
		s.checkBudgetLimit(ctx, userID, category, txn.Date)
	}

	return &txn, nil
}

// AllocateReserve re-runs child generation for an existing reserved root. The
// operation is idempotent: when children already exist they are returned as-is
// and nothing new is written.
func (s *transactionService) AllocateReserve(ctx context.Context, userID, transactionID string) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	root, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction for allocation: %w", err)
	}
	if !root.IsReservedRoot() || root.ReserveMonthsOrOne() <= 1 {
		return nil, fmt.Errorf("%w: transaction is not a multi-period reserved income", apperrors.ErrValidation)
	}

	existing, err := s.txnRepo.FindChildren(ctx, root.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing allocation: %w", err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	children := SplitReservedIncome(*root)
	if err := s.txnRepo.SaveChildren(ctx, children); err != nil {
		logger.Error("failed to save reservation children", slog.String("transaction_id", root.TransactionID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save reservation children: %w", err)
	}

	logger.Info("reserve allocated", slog.String("transaction_id", root.TransactionID), slog.Int("children", len(children)))
	return children, nil
}

// ListTransactions returns the user's transactions in the resolved period,
// newest first as ordered by the repository.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, month *string, startDay *int) ([]domain.Transaction, error) {
	rng, err := resolveUserRange(ctx, s.settingsRepo, userID, month, startDay)
	if err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.FindTransactionsInRange(ctx, userID, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// DeleteTransaction removes one owned transaction. Deleting a reserved root
// cascades to its children at the storage layer.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

// ResetTransactions bulk-deletes the user's transactions in the resolved
// period, or all of them when month is nil.
func (s *transactionService) ResetTransactions(ctx context.Context, userID string, month *string, startDay *int) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rng, err := resolveUserRange(ctx, s.settingsRepo, userID, month, startDay)
	if err != nil {
		return 0, err
	}

	deleted, err := s.txnRepo.DeleteTransactionsInRange(ctx, userID, rng)
	if err != nil {
		return 0, fmt.Errorf("failed to reset transactions: %w", err)
	}

	logger.Info("transactions reset", slog.Int64("deleted", deleted))
	return deleted, nil
}

// checkBudgetLimit publishes an advisory alert when the category's spending in
// the current budget period crosses its limit. Failures are logged and
// swallowed; alerts never block or fail the write path.
func (s *transactionService) checkBudgetLimit(ctx context.Context, userID string, category *domain.Category, date time.Time) {
	if s.alerts == nil || category.BudgetLimit == nil {
		return
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	settings, err := s.settingsRepo.FindSettings(ctx, userID)
	if err != nil || !settings.NotifyLimitExceeded {
		return
	}

	month := fmt.Sprintf("%04d-%02d", date.Year(), int(date.Month()))
	var rng domain.PeriodRange
	if settings.PeriodStartDay <= 1 {
		rng, err = MonthToRange(month)
	} else {
		rng, err = PeriodToRange(month, settings.PeriodStartDay)
	}
	if err != nil {
		return
	}
	// The expense may predate the period that contains "today"; alert on the
	// period the expense itself lands in.
	if !rng.Contains(date) {
		rng, err = PeriodToRange(fmt.Sprintf("%04d-%02d", date.AddDate(0, -1, 0).Year(), int(date.AddDate(0, -1, 0).Month())), settings.PeriodStartDay)
		if err != nil || !rng.Contains(date) {
			return
		}
	}

	spent, err := s.txnRepo.SumExpensesByCategoryInRange(ctx, userID, category.CategoryID, rng)
	if err != nil {
		logger.Warn("budget limit check failed", slog.String("category_id", category.CategoryID), slog.String("error", err.Error()))
		return
	}
	if spent.LessThanOrEqual(*category.BudgetLimit) {
		return
	}

	alert := portssvc.LimitAlert{
		UserID:       userID,
		CategoryID:   category.CategoryID,
		CategoryName: category.Name,
		Limit:        category.BudgetLimit.StringFixed(2),
		Spent:        spent.StringFixed(2),
		PeriodStart:  rng.Start.Format("2006-01-02"),
		PeriodEnd:    rng.End.Format("2006-01-02"),
	}
	if err := s.alerts.PublishLimitAlert(ctx, alert); err != nil {
		logger.Warn("failed to publish limit alert", slog.String("category_id", category.CategoryID), slog.String("error", err.Error()))
		return
	}
	logger.Info("budget limit alert published", slog.String("category_id", category.CategoryID), slog.String("spent", alert.Spent))
}
