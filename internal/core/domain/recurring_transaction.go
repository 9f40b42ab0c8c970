package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringTransaction is a template that materializes Transaction instances
// on a monthly cadence. Templates are not part of the sync protocol: they
// carry no soft-delete flag and deleting one removes the row.
type RecurringTransaction struct {
	RecurringID   string          `json:"id"`
	UserID        string          `json:"userId"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Type          TransactionType `json:"type"`
	DayOfMonth    int             `json:"dayOfMonth"` // 1-31
	BillingPeriod *string         `json:"billingPeriod,omitempty"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
