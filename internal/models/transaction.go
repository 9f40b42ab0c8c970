package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors the transactions table. Amount holds the canonical USD
// value; the original_* columns are nullable and only populated when the
// entry declared a conversion context.
type Transaction struct {
	TransactionID    string           `db:"transaction_id"` // Primary Key (UUID)
	UserID           string           `db:"user_id"`        // Owning user, immutable
	Amount           decimal.Decimal  `db:"amount"`
	Description      string           `db:"description"`
	Category         string           `db:"category"`
	Date             time.Time        `db:"date"`
	Type             string           `db:"type"` // expense | income
	OriginalAmount   *decimal.Decimal `db:"original_amount"`
	OriginalCurrency *string          `db:"original_currency"` // USD | VES
	RateType         *string          `db:"rate_type"`         // bcv | euro | usdt
	RateValue        *decimal.Decimal `db:"rate_value"`
	SyncFields
}
