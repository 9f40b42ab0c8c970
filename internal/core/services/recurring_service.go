package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hsolorzn/finve_backend/internal/apperrors"
	"github.com/hsolorzn/finve_backend/internal/core/domain"
	portsrepo "github.com/hsolorzn/finve_backend/internal/core/ports/repositories"
	"github.com/hsolorzn/finve_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringService manages recurring transaction templates. Templates sit
// outside the sync protocol: no soft delete, no cursor listing, and the
// monthly materialization into ledger transactions happens elsewhere.
type RecurringService struct {
	recurringRepo portsrepo.RecurringTransactionRepositoryFacade
}

// NewRecurringService creates a new RecurringService.
func NewRecurringService(recurringRepo portsrepo.RecurringTransactionRepositoryFacade) *RecurringService {
	return &RecurringService{recurringRepo: recurringRepo}
}

// CreateRecurring persists a new template owned by userID.
func (s *RecurringService) CreateRecurring(ctx context.Context, req dto.CreateRecurringRequest, userID string) (*domain.RecurringTransaction, error) {
	description := strings.TrimSpace(req.Description)

	fields := map[string]string{}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		fields["amount"] = "must be greater than zero"
	}
	if description == "" || len(description) > 100 {
		fields["description"] = "must be between 1 and 100 characters"
	}
	if req.DayOfMonth < 1 || req.DayOfMonth > 31 {
		fields["dayOfMonth"] = "must be between 1 and 31"
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now().UTC()
	rec := domain.RecurringTransaction{
		RecurringID:   uuid.NewString(),
		UserID:        userID,
		Amount:        req.Amount,
		Description:   description,
		Category:      req.Category,
		Type:          domain.TransactionType(req.Type),
		DayOfMonth:    req.DayOfMonth,
		BillingPeriod: req.BillingPeriod,
		IsActive:      isActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.recurringRepo.SaveRecurring(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to create recurring transaction in service: %w", err)
	}

	return &rec, nil
}

// UpdateRecurring applies a shallow patch onto the stored template.
func (s *RecurringService) UpdateRecurring(ctx context.Context, recurringID string, userID string, req dto.UpdateRecurringRequest) (*domain.RecurringTransaction, error) {
	rec, err := s.recurringRepo.FindRecurringByID(ctx, recurringID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring transaction for update: %w", err)
	}

	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, apperrors.NewValidationError(map[string]string{"amount": "must be greater than zero"})
		}
		rec.Amount = *req.Amount
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" || len(description) > 100 {
			return nil, apperrors.NewValidationError(map[string]string{"description": "must be between 1 and 100 characters"})
		}
		rec.Description = description
	}
	if req.Category != nil {
		rec.Category = *req.Category
	}
	if req.Type != nil {
		rec.Type = domain.TransactionType(*req.Type)
	}
	if req.DayOfMonth != nil {
		if *req.DayOfMonth < 1 || *req.DayOfMonth > 31 {
			return nil, apperrors.NewValidationError(map[string]string{"dayOfMonth": "must be between 1 and 31"})
		}
		rec.DayOfMonth = *req.DayOfMonth
	}
	if req.BillingPeriod != nil {
		rec.BillingPeriod = req.BillingPeriod
	}
	if req.IsActive != nil {
		rec.IsActive = *req.IsActive
	}
	rec.UpdatedAt = time.Now().UTC()

	if err := s.recurringRepo.UpdateRecurring(ctx, *rec); err != nil {
		return nil, fmt.Errorf("failed to update recurring transaction in service: %w", err)
	}

	return rec, nil
}

// DeleteRecurring physically removes the template.
func (s *RecurringService) DeleteRecurring(ctx context.Context, recurringID string, userID string) error {
	if err := s.recurringRepo.DeleteRecurring(ctx, recurringID, userID); err != nil {
		return fmt.Errorf("failed to delete recurring transaction in service: %w", err)
	}
	return nil
}

// ListRecurring returns all of the user's templates.
func (s *RecurringService) ListRecurring(ctx context.Context, userID string) ([]domain.RecurringTransaction, error) {
	recs, err := s.recurringRepo.ListRecurringByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring transactions in service: %w", err)
	}
	if recs == nil {
		return []domain.RecurringTransaction{}, nil
	}
	return recs, nil
}
