package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hsolorzn/finve_backend/internal/apperrors"
	"github.com/hsolorzn/finve_backend/internal/core/domain"
	portsrepo "github.com/hsolorzn/finve_backend/internal/core/ports/repositories"
	"github.com/hsolorzn/finve_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{db: db}
}

// Ensure PgxTransactionRepository implements the facade.
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// Helper to convert domain.Transaction to models.Transaction
func toModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:  d.TransactionID,
		UserID:         d.UserID,
		Amount:         d.Amount,
		Description:    d.Description,
		Category:       d.Category,
		Date:           d.Date,
		Type:           string(d.Type),
		OriginalAmount: d.OriginalAmount,
		RateValue:      d.RateValue,
		SyncFields: models.SyncFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
			IsDeleted: d.IsDeleted,
		},
	}
	if d.OriginalCurrency != nil {
		cur := string(*d.OriginalCurrency)
		m.OriginalCurrency = &cur
	}
	if d.RateType != nil {
		rt := string(*d.RateType)
		m.RateType = &rt
	}
	return m
}

// Helper to convert models.Transaction to domain.Transaction
func toDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID:  m.TransactionID,
		UserID:         m.UserID,
		Amount:         m.Amount,
		Description:    m.Description,
		Category:       m.Category,
		Date:           m.Date,
		Type:           domain.TransactionType(m.Type),
		OriginalAmount: m.OriginalAmount,
		RateValue:      m.RateValue,
		SyncFields: domain.SyncFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
			IsDeleted: m.IsDeleted,
		},
	}
	if m.OriginalCurrency != nil {
		cur := domain.Currency(*m.OriginalCurrency)
		d.OriginalCurrency = &cur
	}
	if m.RateType != nil {
		rt := domain.RateType(*m.RateType)
		d.RateType = &rt
	}
	return d
}

const transactionColumns = `
	transaction_id, user_id, amount, description, category, date, type,
	original_amount, original_currency, rate_type, rate_value,
	created_at, updated_at, is_deleted`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.Amount,
		&m.Description,
		&m.Category,
		&m.Date,
		&m.Type,
		&m.OriginalAmount,
		&m.OriginalCurrency,
		&m.RateType,
		&m.RateValue,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.IsDeleted,
	)
	return m, err
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
        INSERT INTO transactions (` + transactionColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.db.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.Amount,
		m.Description,
		m.Category,
		m.Date,
		m.Type,
		m.OriginalAmount,
		m.OriginalCurrency,
		m.RateType,
		m.RateValue,
		m.CreatedAt,
		m.UpdatedAt,
		m.IsDeleted,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	// Scoped by both id and owner: a record belonging to someone else is
	// indistinguishable from one that does not exist.
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND user_id = $2 AND is_deleted = FALSE;
	`
	m, err := scanTransaction(r.db.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	d := toDomainTransaction(m)
	return &d, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	// Full-row write, no version column: the later of two concurrent
	// updates wins in full.
	query := `
        UPDATE transactions
        SET amount = $1, description = $2, category = $3, date = $4, type = $5,
            updated_at = $6
        WHERE transaction_id = $7 AND user_id = $8 AND is_deleted = FALSE;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Amount,
		m.Description,
		m.Category,
		m.Date,
		m.Type,
		m.UpdatedAt,
		m.TransactionID,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update transaction query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) MarkTransactionDeleted(ctx context.Context, transactionID string, userID string, deletedAt time.Time) error {
	query := `
        UPDATE transactions
        SET is_deleted = TRUE, updated_at = $1
        WHERE transaction_id = $2 AND user_id = $3 AND is_deleted = FALSE;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark transaction as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) ListTransactionsChangedSince(ctx context.Context, userID string, since *time.Time) ([]domain.Transaction, error) {
	// Full pulls exclude tombstones (the client has nothing to delete yet);
	// incremental pulls must include them so deletions propagate. The
	// cursor comparison is strictly greater-than.
	var (
		query string
		args  []any
	)
	if since == nil {
		query = `
            SELECT ` + transactionColumns + `
            FROM transactions
            WHERE user_id = $1 AND is_deleted = FALSE
            ORDER BY created_at DESC;
        `
		args = []any{userID}
	} else {
		query = `
            SELECT ` + transactionColumns + `
            FROM transactions
            WHERE user_id = $1 AND updated_at > $2
            ORDER BY created_at DESC;
        `
		args = []any{userID, *since}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	return txns, nil
}
