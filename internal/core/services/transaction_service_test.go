package services_test

import (
	"context"
	"errors"
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

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, userID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsChangedSince(ctx context.Context, userID string, since *time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, since)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkTransactionDeleted(ctx context.Context, transactionID string, userID string, deletedAt time.Time) error {
	args := m.Called(ctx, transactionID, userID, deletedAt)
	return args.Error(0)
}

// stubRateReader serves a fixed snapshot so normalization outcomes are
// deterministic.
type stubRateReader struct {
	snap domain.RateSnapshot
}

func (s *stubRateReader) GetRates(ctx context.Context) domain.RateSnapshot {
	return s.snap
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	rates    *stubRateReader
	service  portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.rates = &stubRateReader{snap: domain.RateSnapshot{
		BCV:  decimal.RequireFromString("36.5"),
		Euro: decimal.RequireFromString("40.0"),
		USDT: decimal.RequireFromString("42.25"),
	}}
	suite.service = services.NewTransactionService(suite.mockRepo, suite.rates)
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// --- CreateTransaction Tests ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_PlainUSD() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Amount:      decimal.RequireFromString("25.50"),
		Description: "groceries",
		Category:    "food",
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Type:        "expense",
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.UserID == userID &&
			txn.Amount.Equal(req.Amount) &&
			txn.OriginalCurrency == nil &&
			txn.RateValue == nil &&
			!txn.IsDeleted
	})).Return(nil).Once()

	created, err := suite.service.CreateTransaction(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.TransactionID)
	suite.Equal(created.CreatedAt, created.UpdatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NormalizesVES() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Amount:           decimal.RequireFromString("365"),
		Description:      "pago movil",
		Category:         "food",
		Date:             time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Type:             "expense",
		OriginalCurrency: strPtr("VES"),
		RateType:         strPtr("bcv"),
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.Anything).Return(nil).Once()

	created, err := suite.service.CreateTransaction(ctx, req, userID)

	suite.Require().NoError(err)
	suite.True(created.Amount.Equal(decimal.RequireFromString("10")), "amount = %s", created.Amount)
	suite.Require().NotNil(created.OriginalAmount)
	suite.True(created.OriginalAmount.Equal(decimal.RequireFromString("365")))
	suite.Require().NotNil(created.OriginalCurrency)
	suite.Equal(domain.CurrencyVES, *created.OriginalCurrency)
	suite.Require().NotNil(created.RateType)
	suite.Equal(domain.RateTypeBCV, *created.RateType)
	suite.Require().NotNil(created.RateValue)
	suite.True(created.RateValue.Equal(decimal.RequireFromString("36.5")))
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_USDArbitrage() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:           decimal.RequireFromString("100"),
		Description:      "remesa",
		Category:         "income",
		Date:             time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Type:             "income",
		OriginalCurrency: strPtr("USD"),
		RateType:         strPtr("euro"),
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.Anything).Return(nil).Once()

	created, err := suite.service.CreateTransaction(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	// 100 * 40.0 / 36.5, rounded once at the end.
	suite.True(created.Amount.Equal(decimal.RequireFromString("109.59")), "amount = %s", created.Amount)
	suite.Require().NotNil(created.OriginalAmount)
	suite.True(created.OriginalAmount.Equal(decimal.RequireFromString("100")))
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ValidationFailures() {
	ctx := context.Background()

	tests := []struct {
		name  string
		req   dto.CreateTransactionRequest
		field string
	}{
		{
			name: "zero amount",
			req: dto.CreateTransactionRequest{
				Amount:      decimal.Zero,
				Description: "x",
				Category:    "food",
				Type:        "expense",
			},
			field: "amount",
		},
		{
			name: "blank description",
			req: dto.CreateTransactionRequest{
				Amount:      decimal.NewFromInt(10),
				Description: "   ",
				Category:    "food",
				Type:        "expense",
			},
			field: "description",
		},
		{
			name: "blank category",
			req: dto.CreateTransactionRequest{
				Amount:      decimal.NewFromInt(10),
				Description: "x",
				Category:    " ",
				Type:        "expense",
			},
			field: "category",
		},
		{
			name: "rateType without originalCurrency",
			req: dto.CreateTransactionRequest{
				Amount:      decimal.NewFromInt(10),
				Description: "x",
				Category:    "food",
				Type:        "expense",
				RateType:    strPtr("bcv"),
			},
			field: "rateType",
		},
		{
			name: "VES without rateType",
			req: dto.CreateTransactionRequest{
				Amount:           decimal.NewFromInt(10),
				Description:      "x",
				Category:         "food",
				Type:             "expense",
				OriginalCurrency: strPtr("VES"),
			},
			field: "rateType",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			created, err := suite.service.CreateTransaction(ctx, tt.req, uuid.NewString())

			suite.Require().Error(err)
			suite.Nil(created)
			suite.ErrorIs(err, apperrors.ErrValidation)
			var verr *apperrors.ValidationError
			suite.Require().ErrorAs(err, &verr)
			suite.Contains(verr.Fields, tt.field)
		})
	}

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

// --- UpdateTransaction Tests ---

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_AppliesPatchAndBumpsUpdatedAt() {
	ctx := context.Background()
	userID := uuid.NewString()
	txnID := uuid.NewString()
	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	existing := &domain.Transaction{
		TransactionID: txnID,
		UserID:        userID,
		Amount:        decimal.NewFromInt(10),
		Description:   "old",
		Category:      "food",
		Type:          domain.Expense,
		SyncFields:    domain.SyncFields{CreatedAt: created, UpdatedAt: created},
	}

	suite.mockRepo.On("FindTransactionByID", ctx, txnID, userID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Description == "new description" &&
			txn.Amount.Equal(decimal.NewFromInt(10)) && // untouched field survives
			txn.UpdatedAt.After(created)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, txnID, userID, dto.UpdateTransactionRequest{
		Description: strPtr("new description"),
	})

	suite.Require().NoError(err)
	suite.Equal("new description", updated.Description)
	suite.True(updated.UpdatedAt.After(created))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFoundForOtherUsersRecord() {
	ctx := context.Background()
	txnID := uuid.NewString()
	userID := uuid.NewString()

	// Repository scopes the lookup by owner, so someone else's record is
	// indistinguishable from a missing one.
	suite.mockRepo.On("FindTransactionByID", ctx, txnID, userID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateTransaction(ctx, txnID, userID, dto.UpdateTransactionRequest{
		Amount: decPtr("99"),
	})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()
	txnID := uuid.NewString()
	userID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID: txnID,
		UserID:        userID,
		Amount:        decimal.NewFromInt(10),
		Description:   "old",
		Category:      "food",
	}

	suite.mockRepo.On("FindTransactionByID", ctx, txnID, userID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, txnID, userID, dto.UpdateTransactionRequest{
		Amount: decPtr("-5"),
	})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- SoftDeleteTransaction Tests ---

func (suite *TransactionServiceTestSuite) TestSoftDeleteTransaction_ReturnsTombstoneState() {
	ctx := context.Background()
	txnID := uuid.NewString()
	userID := uuid.NewString()
	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	existing := &domain.Transaction{
		TransactionID: txnID,
		UserID:        userID,
		Amount:        decimal.NewFromInt(10),
		Description:   "to remove",
		Category:      "food",
		SyncFields:    domain.SyncFields{CreatedAt: created, UpdatedAt: created},
	}

	suite.mockRepo.On("FindTransactionByID", ctx, txnID, userID).Return(existing, nil).Once()
	suite.mockRepo.On("MarkTransactionDeleted", ctx, txnID, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	deleted, err := suite.service.SoftDeleteTransaction(ctx, txnID, userID)

	suite.Require().NoError(err)
	suite.True(deleted.IsDeleted)
	suite.True(deleted.UpdatedAt.After(created))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestSoftDeleteTransaction_NotFound() {
	ctx := context.Background()
	txnID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockRepo.On("FindTransactionByID", ctx, txnID, userID).Return(nil, apperrors.ErrNotFound).Once()

	deleted, err := suite.service.SoftDeleteTransaction(ctx, txnID, userID)

	suite.Require().Error(err)
	suite.Nil(deleted)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkTransactionDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- SyncTransactions Tests ---

func (suite *TransactionServiceTestSuite) TestSyncTransactions_PassesCursorThrough() {
	ctx := context.Background()
	userID := uuid.NewString()
	since := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	changed := []domain.Transaction{
		{TransactionID: uuid.NewString(), UserID: userID, Description: "kept"},
		{TransactionID: uuid.NewString(), UserID: userID, SyncFields: domain.SyncFields{IsDeleted: true}},
	}

	suite.mockRepo.On("ListTransactionsChangedSince", ctx, userID, &since).Return(changed, nil).Once()

	got, err := suite.service.SyncTransactions(ctx, userID, &since)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.True(got[1].IsDeleted, "tombstones travel on cursor pulls")
}

func (suite *TransactionServiceTestSuite) TestSyncTransactions_NilResultBecomesEmptySlice() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("ListTransactionsChangedSince", ctx, userID, (*time.Time)(nil)).Return(nil, nil).Once()

	got, err := suite.service.SyncTransactions(ctx, userID, nil)

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *TransactionServiceTestSuite) TestSyncTransactions_RepoError() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("ListTransactionsChangedSince", ctx, userID, (*time.Time)(nil)).Return(nil, errors.New("db down")).Once()

	got, err := suite.service.SyncTransactions(ctx, userID, nil)

	suite.Require().Error(err)
	suite.Nil(got)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
