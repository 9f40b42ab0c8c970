package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hsolorzn/finve_backend/internal/apperrors"
	"github.com/hsolorzn/finve_backend/internal/core/domain"
	portsrepo "github.com/hsolorzn/finve_backend/internal/core/ports/repositories"
	"github.com/hsolorzn/finve_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRecurringRepository struct {
	db *pgxpool.Pool
}

func newPgxRecurringRepository(db *pgxpool.Pool) portsrepo.RecurringTransactionRepositoryFacade {
	return &PgxRecurringRepository{db: db}
}

var _ portsrepo.RecurringTransactionRepositoryFacade = (*PgxRecurringRepository)(nil)

func toModelRecurring(d domain.RecurringTransaction) models.RecurringTransaction {
	return models.RecurringTransaction{
		RecurringID:   d.RecurringID,
		UserID:        d.UserID,
		Amount:        d.Amount,
		Description:   d.Description,
		Category:      d.Category,
		Type:          string(d.Type),
		DayOfMonth:    d.DayOfMonth,
		BillingPeriod: d.BillingPeriod,
		IsActive:      d.IsActive,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func toDomainRecurring(m models.RecurringTransaction) domain.RecurringTransaction {
	return domain.RecurringTransaction{
		RecurringID:   m.RecurringID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		Description:   m.Description,
		Category:      m.Category,
		Type:          domain.TransactionType(m.Type),
		DayOfMonth:    m.DayOfMonth,
		BillingPeriod: m.BillingPeriod,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

const recurringColumns = `
	recurring_id, user_id, amount, description, category, type,
	day_of_month, billing_period, is_active, created_at, updated_at`

func scanRecurring(row pgx.Row) (models.RecurringTransaction, error) {
	var m models.RecurringTransaction
	err := row.Scan(
		&m.RecurringID,
		&m.UserID,
		&m.Amount,
		&m.Description,
		&m.Category,
		&m.Type,
		&m.DayOfMonth,
		&m.BillingPeriod,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxRecurringRepository) SaveRecurring(ctx context.Context, rec domain.RecurringTransaction) error {
	m := toModelRecurring(rec)
	query := `
        INSERT INTO recurring_transactions (` + recurringColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		m.RecurringID,
		m.UserID,
		m.Amount,
		m.Description,
		m.Category,
		m.Type,
		m.DayOfMonth,
		m.BillingPeriod,
		m.IsActive,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save recurring transaction: %w", err)
	}
	return nil
}

func (r *PgxRecurringRepository) FindRecurringByID(ctx context.Context, recurringID string, userID string) (*domain.RecurringTransaction, error) {
	query := `
		SELECT ` + recurringColumns + `
		FROM recurring_transactions
		WHERE recurring_id = $1 AND user_id = $2;
	`
	m, err := scanRecurring(r.db.QueryRow(ctx, query, recurringID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find recurring transaction by ID %s: %w", recurringID, err)
	}

	d := toDomainRecurring(m)
	return &d, nil
}

func (r *PgxRecurringRepository) UpdateRecurring(ctx context.Context, rec domain.RecurringTransaction) error {
	m := toModelRecurring(rec)
	query := `
        UPDATE recurring_transactions
        SET amount = $1, description = $2, category = $3, type = $4,
            day_of_month = $5, billing_period = $6, is_active = $7,
            updated_at = $8
        WHERE recurring_id = $9 AND user_id = $10;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Amount,
		m.Description,
		m.Category,
		m.Type,
		m.DayOfMonth,
		m.BillingPeriod,
		m.IsActive,
		m.UpdatedAt,
		m.RecurringID,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update recurring transaction query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("recurring transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxRecurringRepository) DeleteRecurring(ctx context.Context, recurringID string, userID string) error {
	// Templates are not synced, so deletion is physical.
	query := `
        DELETE FROM recurring_transactions
        WHERE recurring_id = $1 AND user_id = $2;
    `
	cmdTag, err := r.db.Exec(ctx, query, recurringID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete recurring transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("recurring transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxRecurringRepository) ListRecurringByUser(ctx context.Context, userID string) ([]domain.RecurringTransaction, error) {
	query := `
        SELECT ` + recurringColumns + `
        FROM recurring_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring transactions: %w", err)
	}
	defer rows.Close()

	recs := []domain.RecurringTransaction{}
	for rows.Next() {
		m, err := scanRecurring(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring transaction row: %w", err)
		}
		recs = append(recs, toDomainRecurring(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating recurring transaction rows: %w", rows.Err())
	}

	return recs, nil
}
