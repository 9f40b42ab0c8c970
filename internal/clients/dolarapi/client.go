// Package dolarapi fetches the official and parallel market quotes for the
// local currency and derives the euro-regime rate from the official one.
package dolarapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hsolorzn/finve_backend/internal/apperrors"
	"github.com/hsolorzn/finve_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// euroMarkup is the fixed markup applied to the official rate to derive the
// euro regime.
var euroMarkup = decimal.RequireFromString("1.156")

// Client fetches rate quotes over HTTP. The two sources are independent; a
// failure of either one fails the whole fetch so a snapshot is never
// partially populated.
type Client struct {
	httpClient  *http.Client
	officialURL string
	parallelURL string
	now         func() time.Time
}

// Config carries the two quote source URLs and the per-request timeout.
type Config struct {
	OfficialURL string
	ParallelURL string
	Timeout     time.Duration
}

// quoteResponse is the subset of the quote payload we consume.
type quoteResponse struct {
	Promedio float64 `json:"promedio"`
}

// New creates a Client from the rates section of the app config.
func New(cfg Config) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		officialURL: cfg.OfficialURL,
		parallelURL: cfg.ParallelURL,
		now:         time.Now,
	}
}

// FetchRates retrieves both quotes and assembles a full snapshot with
// euro = round2(official * 1.156). Timeouts are handled by the underlying
// HTTP client and surface like any other fetch failure.
func (c *Client) FetchRates(ctx context.Context) (domain.RateSnapshot, error) {
	official, err := c.fetchQuote(ctx, c.officialURL)
	if err != nil {
		return domain.RateSnapshot{}, fmt.Errorf("official quote: %w", err)
	}

	parallel, err := c.fetchQuote(ctx, c.parallelURL)
	if err != nil {
		return domain.RateSnapshot{}, fmt.Errorf("parallel quote: %w", err)
	}

	return domain.RateSnapshot{
		BCV:       official,
		Euro:      official.Mul(euroMarkup).Round(2),
		USDT:      parallel,
		UpdatedAt: c.now().UTC(),
	}, nil
}

func (c *Client) fetchQuote(ctx context.Context, url string) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: building request: %v", apperrors.ErrRateFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", apperrors.ErrRateFetch, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return decimal.Decimal{}, fmt.Errorf("%w: unexpected status %d", apperrors.ErrRateFetch, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: reading body: %v", apperrors.ErrRateFetch, err)
	}

	var quote quoteResponse
	if err := json.Unmarshal(body, &quote); err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: unmarshalling response: %v", apperrors.ErrRateFetch, err)
	}
	if quote.Promedio <= 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: non-positive quote %v", apperrors.ErrRateFetch, quote.Promedio)
	}

	return decimal.NewFromFloat(quote.Promedio), nil
}
