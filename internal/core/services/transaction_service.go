package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hsolorzn/finve_backend/internal/apperrors"
	"github.com/hsolorzn/finve_backend/internal/core/domain"
	portsrepo "github.com/hsolorzn/finve_backend/internal/core/ports/repositories"
	portssvc "github.com/hsolorzn/finve_backend/internal/core/ports/services"
	"github.com/hsolorzn/finve_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionService provides the ledger operations for transactions:
// create with optional USD normalization, last-writer-wins patching, soft
// delete, and cursor-based sync pulls.
type TransactionService struct {
	txnRepo portsrepo.TransactionRepositoryFacade
	rates   portssvc.RateReaderSvc
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, rates portssvc.RateReaderSvc) *TransactionService {
	return &TransactionService{
		txnRepo: txnRepo,
		rates:   rates,
	}
}

// CreateTransaction persists a new transaction owned by userID. When the
// request declares an original currency, the amount is passed through the
// normalizer against the current rate snapshot and the conversion context is
// preserved on the record.
func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	description := strings.TrimSpace(req.Description)

	fields := map[string]string{}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		fields["amount"] = "must be greater than zero"
	}
	if description == "" || len(description) > 100 {
		fields["description"] = "must be between 1 and 100 characters"
	}
	if strings.TrimSpace(req.Category) == "" {
		fields["category"] = "must not be empty"
	}
	if req.RateType != nil && req.OriginalCurrency == nil {
		fields["rateType"] = "requires originalCurrency"
	}
	if req.OriginalCurrency != nil && domain.Currency(*req.OriginalCurrency) == domain.CurrencyVES && req.RateType == nil {
		fields["rateType"] = "required for VES amounts"
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Amount:        req.Amount,
		Description:   description,
		Category:      req.Category,
		Date:          req.Date,
		Type:          domain.TransactionType(req.Type),
		SyncFields: domain.SyncFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if req.OriginalCurrency != nil {
		currency := domain.Currency(*req.OriginalCurrency)
		var rateType *domain.RateType
		if req.RateType != nil {
			rt := domain.RateType(*req.RateType)
			rateType = &rt
		}

		normalized := NormalizeToUSD(req.Amount, currency, rateType, s.rates.GetRates(ctx))
		original := req.Amount
		txn.Amount = normalized.FinalAmount
		txn.OriginalAmount = &original
		txn.OriginalCurrency = &currency
		txn.RateType = rateType
		txn.RateValue = normalized.RateValue
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction in service: %w", err)
	}

	return &txn, nil
}

// UpdateTransaction loads the record scoped by id and owner, applies the
// shallow patch, bumps UpdatedAt and writes the whole row back. There is no
// version check: concurrent updates resolve last-writer-wins on the full
// document.
func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, userID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction for update: %w", err)
	}

	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, apperrors.NewValidationError(map[string]string{"amount": "must be greater than zero"})
		}
		txn.Amount = *req.Amount
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" || len(description) > 100 {
			return nil, apperrors.NewValidationError(map[string]string{"description": "must be between 1 and 100 characters"})
		}
		txn.Description = description
	}
	if req.Category != nil {
		if strings.TrimSpace(*req.Category) == "" {
			return nil, apperrors.NewValidationError(map[string]string{"category": "must not be empty"})
		}
		txn.Category = *req.Category
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Type != nil {
		txn.Type = domain.TransactionType(*req.Type)
	}
	txn.UpdatedAt = time.Now().UTC()

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction in service: %w", err)
	}

	return txn, nil
}

// SoftDeleteTransaction flags the record deleted and bumps UpdatedAt so the
// deletion travels to offline clients as a tombstone. The row is retained.
func (s *TransactionService) SoftDeleteTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction for delete: %w", err)
	}

	deletedAt := time.Now().UTC()
	if err := s.txnRepo.MarkTransactionDeleted(ctx, transactionID, userID, deletedAt); err != nil {
		return nil, fmt.Errorf("failed to soft delete transaction in service: %w", err)
	}

	txn.IsDeleted = true
	txn.UpdatedAt = deletedAt
	return txn, nil
}

// SyncTransactions resolves a sync cursor into the records the client is
// missing. Cursor comparison is strict: a record updated exactly at lastSync
// is assumed already incorporated.
func (s *TransactionService) SyncTransactions(ctx context.Context, userID string, lastSync *time.Time) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactionsChangedSince(ctx, userID, lastSync)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}
