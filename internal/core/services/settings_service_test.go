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

type SettingsServiceTestSuite struct {
	suite.Suite
	mockSettingsRepo *MockSettingsRepository
	service          portssvc.SettingsSvcFacade
	userID           string
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.service = services.NewSettingsService(suite.mockSettingsRepo)
	suite.userID = uuid.NewString()
}

func (suite *SettingsServiceTestSuite) TestGetSettings_ReturnsExistingRow() {
	ctx := context.Background()
	existing := domain.UserSettings{UserID: suite.userID, Theme: domain.ThemeDark, PeriodStartDay: 10}
	suite.mockSettingsRepo.On("FindSettings", ctx, suite.userID).Return(&existing, nil).Once()

	settings, err := suite.service.GetSettings(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ThemeDark, settings.Theme)
	suite.Equal(10, settings.PeriodStartDay)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "SaveSettings")
}

func (suite *SettingsServiceTestSuite) TestGetSettings_CreatesDefaultsOnFirstAccess() {
	ctx := context.Background()
	suite.mockSettingsRepo.On("FindSettings", ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSettingsRepo.On("SaveSettings", ctx, mock.MatchedBy(func(s domain.UserSettings) bool {
		return s.UserID == suite.userID && s.Theme == domain.ThemeLight && s.PeriodStartDay == 1 && s.NotifyLimitExceeded
	})).Return(nil).Once()

	settings, err := suite.service.GetSettings(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ThemeLight, settings.Theme)
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_Partial() {
	ctx := context.Background()
	existing := domain.DefaultSettings(suite.userID)
	suite.mockSettingsRepo.On("FindSettings", ctx, suite.userID).Return(&existing, nil).Once()
	suite.mockSettingsRepo.On("SaveSettings", ctx, mock.MatchedBy(func(s domain.UserSettings) bool {
		return s.Theme == domain.ThemeDark && s.PeriodStartDay == 15 && s.NotifyLimitExceeded
	})).Return(nil).Once()

	theme := "dark"
	day := 15
	settings, err := suite.service.UpdateSettings(ctx, suite.userID, dto.UpdateSettingsRequest{
		Theme:          &theme,
		PeriodStartDay: &day,
	})

	suite.Require().NoError(err)
	suite.Equal(domain.ThemeDark, settings.Theme)
	suite.Equal(15, settings.PeriodStartDay)
	suite.True(settings.NotifyLimitExceeded)
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_RejectsStartDayOutOfRange() {
	ctx := context.Background()
	existing := domain.DefaultSettings(suite.userID)
	suite.mockSettingsRepo.On("FindSettings", ctx, suite.userID).Return(&existing, nil).Once()

	day := 32
	_, err := suite.service.UpdateSettings(ctx, suite.userID, dto.UpdateSettingsRequest{PeriodStartDay: &day})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "SaveSettings")
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
