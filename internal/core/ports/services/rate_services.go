package services

import (
	"context"

	"github.com/hsolorzn/finve_backend/internal/core/domain"
)

// RateProvider fetches live market quotes from the external rate sources.
// Implementations must never return a partially populated snapshot.
type RateProvider interface {
	FetchRates(ctx context.Context) (domain.RateSnapshot, error)
}

// RateReaderSvc serves the current rate snapshot, cached or fallback.
type RateReaderSvc interface {
	// GetRates never fails: when the provider is unreachable a fallback
	// snapshot is returned instead of an error.
	GetRates(ctx context.Context) domain.RateSnapshot
}

// RateSvcFacade combines the rate service interfaces.
type RateSvcFacade interface {
	RateReaderSvc
}
