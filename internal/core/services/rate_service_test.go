package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hsolorzn/finve_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRateProvider struct {
	calls   atomic.Int64
	block   chan struct{} // when non-nil, FetchRates waits on it
	snap    domain.RateSnapshot
	err     error
	mu      sync.Mutex
	nextErr error // consumed by the next call only
}

func (f *fakeRateProvider) FetchRates(ctx context.Context) (domain.RateSnapshot, error) {
	f.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return domain.RateSnapshot{}, err
	}
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	err := f.nextErr
	f.nextErr = nil
	f.mu.Unlock()
	if err != nil {
		return domain.RateSnapshot{}, err
	}
	if f.err != nil {
		return domain.RateSnapshot{}, f.err
	}
	return f.snap, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRateService(provider *fakeRateProvider, clock *time.Time) *RateService {
	svc := NewRateService(provider, discardLogger())
	svc.now = func() time.Time { return *clock }
	return svc
}

func liveSnapshot() domain.RateSnapshot {
	return domain.RateSnapshot{
		BCV:  decimal.RequireFromString("36.5"),
		Euro: decimal.RequireFromString("42.19"),
		USDT: decimal.RequireFromString("38.1"),
	}
}

func TestRateService_CachesWithinTTL(t *testing.T) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	provider := &fakeRateProvider{snap: liveSnapshot()}
	svc := newTestRateService(provider, &clock)

	first := svc.GetRates(context.Background())
	require.False(t, first.IsFallback)
	assert.True(t, first.BCV.Equal(decimal.RequireFromString("36.5")))

	// Just inside the window: served from cache, no second fetch.
	clock = clock.Add(599 * time.Second)
	second := svc.GetRates(context.Background())
	assert.True(t, second.BCV.Equal(first.BCV))
	assert.Equal(t, int64(1), provider.calls.Load())
}

func TestRateService_RefetchesAfterExpiry(t *testing.T) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	provider := &fakeRateProvider{snap: liveSnapshot()}
	svc := newTestRateService(provider, &clock)

	svc.GetRates(context.Background())

	clock = clock.Add(600 * time.Second)
	svc.GetRates(context.Background())
	assert.Equal(t, int64(2), provider.calls.Load())
}

func TestRateService_FallbackOnFailureIsNotCached(t *testing.T) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	provider := &fakeRateProvider{snap: liveSnapshot()}
	provider.nextErr = errors.New("upstream down")
	svc := newTestRateService(provider, &clock)

	got := svc.GetRates(context.Background())
	require.True(t, got.IsFallback)
	assert.True(t, got.BCV.Equal(decimal.RequireFromString("341.74")))
	assert.True(t, got.Euro.Equal(decimal.RequireFromString("395.0")))
	assert.True(t, got.USDT.Equal(decimal.RequireFromString("500.0")))

	// The failure must not poison the cache: the very next call retries the
	// provider and gets live data, even with no time elapsed.
	got = svc.GetRates(context.Background())
	assert.False(t, got.IsFallback)
	assert.True(t, got.BCV.Equal(decimal.RequireFromString("36.5")))
	assert.Equal(t, int64(2), provider.calls.Load())
}

func TestRateService_ConcurrentMissesShareOneFetch(t *testing.T) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	provider := &fakeRateProvider{snap: liveSnapshot(), block: make(chan struct{})}
	svc := newTestRateService(provider, &clock)

	const callers = 16
	var wg sync.WaitGroup
	results := make([]domain.RateSnapshot, callers)
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = svc.GetRates(context.Background())
		}(i)
	}

	// Give every goroutine time to pile up behind the single in-flight
	// fetch, then release it.
	time.Sleep(50 * time.Millisecond)
	close(provider.block)
	wg.Wait()

	assert.Equal(t, int64(1), provider.calls.Load())
	for _, snap := range results {
		assert.True(t, snap.BCV.Equal(decimal.RequireFromString("36.5")))
	}
}

func TestRateService_FetchSurvivesCallerCancellation(t *testing.T) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	provider := &fakeRateProvider{snap: liveSnapshot()}
	provider.err = nil
	svc := newTestRateService(provider, &clock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The provider sees a detached context, so an already-cancelled caller
	// still produces a real snapshot.
	got := svc.GetRates(ctx)
	assert.False(t, got.IsFallback)
}
