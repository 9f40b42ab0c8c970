package services

import (
	"context"
	"time"

	"github.com/hsolorzn/finve_backend/internal/core/domain"
	"github.com/hsolorzn/finve_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for ledger transactions.
type TransactionReaderSvc interface {
	// SyncTransactions resolves a client's sync cursor into the records it
	// is missing. A nil cursor is an initial full pull (no tombstones);
	// otherwise every record updated strictly after the cursor is
	// returned, soft-deleted ones included.
	SyncTransactions(ctx context.Context, userID string, lastSync *time.Time) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for ledger transactions.
type TransactionWriterSvc interface {
	// CreateTransaction persists a new transaction for the user,
	// normalizing the amount to USD when a conversion context is present.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// UpdateTransaction applies a shallow patch to an existing record.
	// Cross-user access yields ErrNotFound.
	UpdateTransaction(ctx context.Context, transactionID string, userID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// SoftDeleteTransaction flags the record deleted and returns the
	// resulting tombstone state.
	SoftDeleteTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
