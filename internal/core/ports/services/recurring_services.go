package services

import (
	"context"

	"github.com/hsolorzn/finve_backend/internal/core/domain"
	"github.com/hsolorzn/finve_backend/internal/dto"
)

// RecurringReaderSvc defines read operations for recurring templates.
type RecurringReaderSvc interface {
	// ListRecurring returns all of the user's templates.
	ListRecurring(ctx context.Context, userID string) ([]domain.RecurringTransaction, error)
}

// RecurringWriterSvc defines write operations for recurring templates.
type RecurringWriterSvc interface {
	// CreateRecurring persists a new template for the user.
	CreateRecurring(ctx context.Context, req dto.CreateRecurringRequest, userID string) (*domain.RecurringTransaction, error)

	// UpdateRecurring applies a shallow patch to an existing template.
	UpdateRecurring(ctx context.Context, recurringID string, userID string, req dto.UpdateRecurringRequest) (*domain.RecurringTransaction, error)

	// DeleteRecurring physically removes the template.
	DeleteRecurring(ctx context.Context, recurringID string, userID string) error
}

// RecurringSvcFacade combines the recurring template service interfaces.
type RecurringSvcFacade interface {
	RecurringReaderSvc
	RecurringWriterSvc
}
