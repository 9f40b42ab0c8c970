package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringTransaction mirrors the recurring_transactions table. Not part of
// the sync protocol, so no soft-delete column.
type RecurringTransaction struct {
	RecurringID   string          `db:"recurring_id"` // Primary Key (UUID)
	UserID        string          `db:"user_id"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	Category      string          `db:"category"`
	Type          string          `db:"type"`         // expense | income
	DayOfMonth    int             `db:"day_of_month"` // 1-31
	BillingPeriod *string         `db:"billing_period"`
	IsActive      bool            `db:"is_active"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}
