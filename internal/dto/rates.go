package dto

import (
	"time"

	"github.com/hsolorzn/finve_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateSnapshotResponse defines the data returned for the rate snapshot.
type RateSnapshotResponse struct {
	BCV        decimal.Decimal `json:"bcv"`
	Euro       decimal.Decimal `json:"euro"`
	USDT       decimal.Decimal `json:"usdt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
	IsFallback bool            `json:"isFallback,omitempty"`
}

// ToRateSnapshotResponse converts a domain.RateSnapshot to its DTO.
func ToRateSnapshotResponse(s domain.RateSnapshot) RateSnapshotResponse {
	return RateSnapshotResponse{
		BCV:        s.BCV,
		Euro:       s.Euro,
		USDT:       s.USDT,
		UpdatedAt:  s.UpdatedAt,
		IsFallback: s.IsFallback,
	}
}
