package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hsolorzn/finve_backend/internal/core/domain"
	portssvc "github.com/hsolorzn/finve_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// rateCacheTTL bounds how long a successfully fetched snapshot is served
// without consulting the provider again.
const rateCacheTTL = 600 * time.Second

// Fixed defaults served when the live sources are unreachable. A stale or
// synthetic rate is preferable to a failed normalization request; rates here
// are advisory financial context, not settlement data.
var (
	fallbackBCV  = decimal.RequireFromString("341.74")
	fallbackEuro = decimal.RequireFromString("395.0")
	fallbackUSDT = decimal.RequireFromString("500.0")
)

// RateService memoizes the provider's snapshot behind a single cache key.
// The cache is instance state, injected where needed; there are no package
// globals, so tests can plug in a fake provider and clock.
type RateService struct {
	provider portssvc.RateProvider
	logger   *slog.Logger
	now      func() time.Time

	group singleflight.Group

	mu        sync.Mutex
	cached    *domain.RateSnapshot
	fetchedAt time.Time
}

// NewRateService creates a RateService backed by the given provider.
func NewRateService(provider portssvc.RateProvider, logger *slog.Logger) *RateService {
	return &RateService{
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

// GetRates returns the cached snapshot while it is fresh. On a miss or
// expiry, exactly one provider call is issued no matter how many requests
// observe the miss concurrently; everyone waits on that same in-flight
// fetch. A provider failure yields a fallback snapshot that is NOT cached,
// so the next call retries the provider.
func (s *RateService) GetRates(ctx context.Context) domain.RateSnapshot {
	s.mu.Lock()
	if s.cached != nil && s.now().Sub(s.fetchedAt) < rateCacheTTL {
		snap := *s.cached
		s.mu.Unlock()
		return snap
	}
	s.mu.Unlock()

	// The fetch outlives any single caller: a client abandoning its request
	// mid-fetch must not cancel the result for the other waiters, so the
	// provider runs on a detached context and relies on its own timeout.
	result, _, _ := s.group.Do("rates", func() (interface{}, error) {
		snap, err := s.provider.FetchRates(context.WithoutCancel(ctx))
		if err != nil {
			s.logger.Warn("Rate fetch failed, serving fallback snapshot", slog.String("error", err.Error()))
			return s.fallbackSnapshot(), nil
		}

		s.mu.Lock()
		s.cached = &snap
		s.fetchedAt = s.now()
		s.mu.Unlock()
		return snap, nil
	})

	return result.(domain.RateSnapshot)
}

func (s *RateService) fallbackSnapshot() domain.RateSnapshot {
	return domain.RateSnapshot{
		BCV:        fallbackBCV,
		Euro:       fallbackEuro,
		USDT:       fallbackUSDT,
		UpdatedAt:  s.now(),
		IsFallback: true,
	}
}
