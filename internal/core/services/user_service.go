package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/fintrack/fintrack_backend/internal/middleware"
	"github.com/fintrack/fintrack_backend/internal/utils"
)

// starterCategory seeds a freshly registered account so the first transaction
// never fails on a missing category. Limits are advisory monthly budgets.
type starterCategory struct {
	name  string
	typ   domain.CategoryType
	limit string // empty means no limit
}

var starterCategories = []starterCategory{
	{name: "Salary", typ: domain.Income},
	{name: "Scholarship", typ: domain.Income},
	{name: "Freelance", typ: domain.Income},
	{name: "Gifts", typ: domain.Income},
	{name: "Food", typ: domain.Expense, limit: "20000.00"},
	{name: "Housing", typ: domain.Expense, limit: "35000.00"},
	{name: "Transport", typ: domain.Expense, limit: "7000.00"},
	{name: "Phone", typ: domain.Expense, limit: "1200.00"},
	{name: "Entertainment", typ: domain.Expense, limit: "8000.00"},
}

// userService provides account registration and lookup.
type userService struct {
	userRepo     portsrepo.UserRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade, settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		settingsRepo: settingsRepo,
	}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// RegisterUser creates the account and provisions the default settings and
// starter categories. Provisioning failures after the account insert are
// logged, not fatal: settings are re-created lazily on first access.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.provisionDefaults(ctx, user.UserID, logger)

	logger.Info("user registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// provisionDefaults creates the settings row and the starter categories.
func (s *userService) provisionDefaults(ctx context.Context, userID string, logger *slog.Logger) {
	settings := domain.DefaultSettings(userID)
	settings.UpdatedAt = time.Now().UTC()
	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		logger.Warn("failed to provision default settings", slog.String("user_id", userID), slog.String("error", err.Error()))
	}

	for _, seed := range starterCategories {
		category := domain.Category{
			CategoryID: uuid.NewString(),
			UserID:     userID,
			Name:       seed.name,
			Type:       seed.typ,
		}
		if seed.limit != "" {
			limit, err := decimal.NewFromString(seed.limit)
			if err != nil {
				continue
			}
			category.BudgetLimit = &limit
		}
		if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
			logger.Warn("failed to provision starter category", slog.String("name", seed.name), slog.String("error", err.Error()))
		}
	}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}
