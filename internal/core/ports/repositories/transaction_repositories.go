package repositories

import (
	"context"
	"time"

	"github.com/hsolorzn/finve_backend/internal/core/domain"
)

// TransactionReader defines read operations for ledger transactions.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction scoped by both id and
	// owner. A record owned by a different user yields ErrNotFound.
	FindTransactionByID(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error)

	// ListTransactionsChangedSince returns the user's records for a sync
	// pull. A nil cursor returns every non-deleted record (initial full
	// pull); a non-nil cursor returns every record, tombstones included,
	// whose UpdatedAt is strictly greater than the cursor. Results are in
	// reverse-creation order.
	ListTransactionsChangedSince(ctx context.Context, userID string, since *time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger transactions.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction persists the full mutable row for an existing
	// transaction, scoped by id and owner. Last write wins; there is no
	// version check.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// MarkTransactionDeleted flags the record as deleted and bumps
	// updated_at so the deletion propagates as a tombstone. The row is
	// retained.
	MarkTransactionDeleted(ctx context.Context, transactionID string, userID string, deletedAt time.Time) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
