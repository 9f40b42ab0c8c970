package dto

import (
	"time"

	"github.com/hsolorzn/finve_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecurringRequest defines the data needed to create a recurring
// transaction template. IsActive defaults to true when omitted.
type CreateRecurringRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description" binding:"required,max=100"`
	Category      string          `json:"category" binding:"required"`
	Type          string          `json:"type" binding:"required,txntype"`
	DayOfMonth    int             `json:"dayOfMonth" binding:"required,min=1,max=31"`
	BillingPeriod *string         `json:"billingPeriod" binding:"omitempty"`
	IsActive      *bool           `json:"isActive" binding:"omitempty"`
}

// UpdateRecurringRequest is a shallow patch; only non-nil fields are applied.
type UpdateRecurringRequest struct {
	Amount        *decimal.Decimal `json:"amount" binding:"omitempty"`
	Description   *string          `json:"description" binding:"omitempty,max=100"`
	Category      *string          `json:"category" binding:"omitempty"`
	Type          *string          `json:"type" binding:"omitempty,txntype"`
	DayOfMonth    *int             `json:"dayOfMonth" binding:"omitempty,min=1,max=31"`
	BillingPeriod *string          `json:"billingPeriod" binding:"omitempty"`
	IsActive      *bool            `json:"isActive" binding:"omitempty"`
}

// RecurringResponse defines the data returned for a recurring template.
type RecurringResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Type          string          `json:"type"`
	DayOfMonth    int             `json:"dayOfMonth"`
	BillingPeriod *string         `json:"billingPeriod,omitempty"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToRecurringResponse converts a domain.RecurringTransaction to its DTO.
func ToRecurringResponse(rec *domain.RecurringTransaction) RecurringResponse {
	return RecurringResponse{
		ID:            rec.RecurringID,
		UserID:        rec.UserID,
		Amount:        rec.Amount,
		Description:   rec.Description,
		Category:      rec.Category,
		Type:          string(rec.Type),
		DayOfMonth:    rec.DayOfMonth,
		BillingPeriod: rec.BillingPeriod,
		IsActive:      rec.IsActive,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}

// ToListRecurringResponse converts a slice of templates to DTOs.
func ToListRecurringResponse(recs []domain.RecurringTransaction) []RecurringResponse {
	res := make([]RecurringResponse, len(recs))
	for i := range recs {
		res[i] = ToRecurringResponse(&recs[i])
	}
	return res
}
