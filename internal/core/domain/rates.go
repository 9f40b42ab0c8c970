package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSnapshot is an ephemeral view of the three exchange-rate regimes at a
// point in time. It is never persisted. IsFallback marks a synthetic snapshot
// built from fixed defaults when the live sources were unreachable.
type RateSnapshot struct {
	BCV        decimal.Decimal `json:"bcv"`
	Euro       decimal.Decimal `json:"euro"`
	USDT       decimal.Decimal `json:"usdt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
	IsFallback bool            `json:"isFallback,omitempty"`
}

// Rate returns the rate value for the given regime.
func (s RateSnapshot) Rate(rt RateType) decimal.Decimal {
	switch rt {
	case RateTypeEuro:
		return s.Euro
	case RateTypeUSDT:
		return s.USDT
	default:
		return s.BCV
	}
}
