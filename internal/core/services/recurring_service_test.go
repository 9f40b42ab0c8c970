package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/hsolorzn/finve_backend/internal/apperrors"
	"github.com/hsolorzn/finve_backend/internal/core/domain"
	portssvc "github.com/hsolorzn/finve_backend/internal/core/ports/services"
	"github.com/hsolorzn/finve_backend/internal/core/services"
	"github.com/hsolorzn/finve_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RecurringTransactionRepository ---
type MockRecurringRepository struct {
	mock.Mock
}

func (m *MockRecurringRepository) FindRecurringByID(ctx context.Context, recurringID string, userID string) (*domain.RecurringTransaction, error) {
	args := m.Called(ctx, recurringID, userID)
	var rec *domain.RecurringTransaction
	if args.Get(0) != nil {
		rec = args.Get(0).(*domain.RecurringTransaction)
	}
	return rec, args.Error(1)
}

func (m *MockRecurringRepository) ListRecurringByUser(ctx context.Context, userID string) ([]domain.RecurringTransaction, error) {
	args := m.Called(ctx, userID)
	var recs []domain.RecurringTransaction
	if args.Get(0) != nil {
		recs = args.Get(0).([]domain.RecurringTransaction)
	}
	return recs, args.Error(1)
}

func (m *MockRecurringRepository) SaveRecurring(ctx context.Context, rec domain.RecurringTransaction) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecurringRepository) UpdateRecurring(ctx context.Context, rec domain.RecurringTransaction) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecurringRepository) DeleteRecurring(ctx context.Context, recurringID string, userID string) error {
	args := m.Called(ctx, recurringID, userID)
	return args.Error(0)
}

// --- Test Suite ---
type RecurringServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRecurringRepository
	service  portssvc.RecurringSvcFacade
}

func (suite *RecurringServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRecurringRepository)
	suite.service = services.NewRecurringService(suite.mockRepo)
}

// --- CreateRecurring Tests ---

func (suite *RecurringServiceTestSuite) TestCreateRecurring_DefaultsToActive() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateRecurringRequest{
		Amount:      decimal.RequireFromString("9.99"),
		Description: "Streaming subscription",
		Category:    "entertainment",
		Type:        "expense",
		DayOfMonth:  15,
	}

	suite.mockRepo.On("SaveRecurring", ctx, mock.MatchedBy(func(rec domain.RecurringTransaction) bool {
		return rec.UserID == userID && rec.IsActive && rec.DayOfMonth == 15
	})).Return(nil).Once()

	created, err := suite.service.CreateRecurring(ctx, req, userID)

	suite.Require().NoError(err)
	suite.True(created.IsActive)
	suite.NotEmpty(created.RecurringID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecurringServiceTestSuite) TestCreateRecurring_ExplicitInactive() {
	ctx := context.Background()
	inactive := false
	req := dto.CreateRecurringRequest{
		Amount:      decimal.RequireFromString("40"),
		Description: "Gym",
		Category:    "health",
		Type:        "expense",
		DayOfMonth:  1,
		IsActive:    &inactive,
	}

	suite.mockRepo.On("SaveRecurring", ctx, mock.Anything).Return(nil).Once()

	created, err := suite.service.CreateRecurring(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.False(created.IsActive)
}

func (suite *RecurringServiceTestSuite) TestCreateRecurring_RejectsDayOutOfRange() {
	ctx := context.Background()
	req := dto.CreateRecurringRequest{
		Amount:      decimal.RequireFromString("9.99"),
		Description: "Streaming",
		Category:    "entertainment",
		Type:        "expense",
		DayOfMonth:  32,
	}

	created, err := suite.service.CreateRecurring(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	var verr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &verr)
	suite.Contains(verr.Fields, "dayOfMonth")
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRecurring", mock.Anything, mock.Anything)
}

// --- UpdateRecurring Tests ---

func (suite *RecurringServiceTestSuite) TestUpdateRecurring_TogglesActive() {
	ctx := context.Background()
	userID := uuid.NewString()
	recurringID := uuid.NewString()
	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	existing := &domain.RecurringTransaction{
		RecurringID: recurringID,
		UserID:      userID,
		Amount:      decimal.RequireFromString("9.99"),
		Description: "Streaming",
		Category:    "entertainment",
		Type:        domain.Expense,
		DayOfMonth:  15,
		IsActive:    true,
		CreatedAt:   created,
		UpdatedAt:   created,
	}

	inactive := false
	suite.mockRepo.On("FindRecurringByID", ctx, recurringID, userID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateRecurring", ctx, mock.MatchedBy(func(rec domain.RecurringTransaction) bool {
		return !rec.IsActive && rec.UpdatedAt.After(created)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateRecurring(ctx, recurringID, userID, dto.UpdateRecurringRequest{
		IsActive: &inactive,
	})

	suite.Require().NoError(err)
	suite.False(updated.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecurringServiceTestSuite) TestUpdateRecurring_NotFound() {
	ctx := context.Background()
	recurringID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockRepo.On("FindRecurringByID", ctx, recurringID, userID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateRecurring(ctx, recurringID, userID, dto.UpdateRecurringRequest{})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- DeleteRecurring Tests ---

func (suite *RecurringServiceTestSuite) TestDeleteRecurring_IsPhysical() {
	ctx := context.Background()
	recurringID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockRepo.On("DeleteRecurring", ctx, recurringID, userID).Return(nil).Once()

	err := suite.service.DeleteRecurring(ctx, recurringID, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecurringServiceTestSuite) TestDeleteRecurring_NotFound() {
	ctx := context.Background()
	recurringID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockRepo.On("DeleteRecurring", ctx, recurringID, userID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteRecurring(ctx, recurringID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- ListRecurring Tests ---

func (suite *RecurringServiceTestSuite) TestListRecurring_NilResultBecomesEmptySlice() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("ListRecurringByUser", ctx, userID).Return(nil, nil).Once()

	got, err := suite.service.ListRecurring(ctx, userID)

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func TestRecurringServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecurringServiceTestSuite))
}
