package repositories

import (
	"context"

	"github.com/hsolorzn/finve_backend/internal/core/domain"
)

// RecurringTransactionReader defines read operations for recurring templates.
type RecurringTransactionReader interface {
	// FindRecurringByID retrieves a template scoped by both id and owner.
	FindRecurringByID(ctx context.Context, recurringID string, userID string) (*domain.RecurringTransaction, error)

	// ListRecurringByUser returns all of the user's templates in
	// reverse-creation order.
	ListRecurringByUser(ctx context.Context, userID string) ([]domain.RecurringTransaction, error)
}

// RecurringTransactionWriter defines write operations for recurring templates.
type RecurringTransactionWriter interface {
	// SaveRecurring persists a new template.
	SaveRecurring(ctx context.Context, rec domain.RecurringTransaction) error

	// UpdateRecurring persists the full mutable row, scoped by id and owner.
	UpdateRecurring(ctx context.Context, rec domain.RecurringTransaction) error

	// DeleteRecurring physically removes the template. Templates are not
	// synced, so no tombstone is kept.
	DeleteRecurring(ctx context.Context, recurringID string, userID string) error
}

// RecurringTransactionRepositoryFacade combines the recurring template
// repository interfaces.
type RecurringTransactionRepositoryFacade interface {
	RecurringTransactionReader
	RecurringTransactionWriter
}
