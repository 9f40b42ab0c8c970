package services_test

import (
	"testing"
	"time"

	"github.com/hsolorzn/finve_backend/internal/core/domain"
	"github.com/hsolorzn/finve_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func rateTypePtr(rt domain.RateType) *domain.RateType {
	return &rt
}

func testSnapshot() domain.RateSnapshot {
	return domain.RateSnapshot{
		BCV:       dec("36.5"),
		Euro:      dec("40.0"),
		USDT:      dec("42.25"),
		UpdatedAt: time.Now(),
	}
}

func TestNormalizeToUSD_VESDividesByChosenRate(t *testing.T) {
	rates := testSnapshot()

	tests := []struct {
		name     string
		amount   string
		rateType domain.RateType
		want     string
		wantRate string
	}{
		{"bcv is the canonical divide-by-official path", "365", domain.RateTypeBCV, "10", "36.5"},
		{"euro uses the same formula with its own rate", "365", domain.RateTypeEuro, "9.13", "40.0"},
		{"usdt uses the same formula with its own rate", "365", domain.RateTypeUSDT, "8.64", "42.25"},
		{"rounding happens once at the end", "100", domain.RateTypeBCV, "2.74", "36.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.NormalizeToUSD(dec(tt.amount), domain.CurrencyVES, rateTypePtr(tt.rateType), rates)

			assert.True(t, got.FinalAmount.Equal(dec(tt.want)), "finalAmount = %s, want %s", got.FinalAmount, tt.want)
			require.NotNil(t, got.RateValue)
			assert.True(t, got.RateValue.Equal(dec(tt.wantRate)))
		})
	}
}

func TestNormalizeToUSD_ArbitrageReexpressesAgainstOfficial(t *testing.T) {
	// A USD amount transacted at the euro rate: 100 * 40.0 / 36.5 = 109.589...
	got := services.NormalizeToUSD(dec("100"), domain.CurrencyUSD, rateTypePtr(domain.RateTypeEuro), testSnapshot())

	assert.True(t, got.FinalAmount.Equal(dec("109.59")), "finalAmount = %s", got.FinalAmount)
	require.NotNil(t, got.RateValue)
	assert.True(t, got.RateValue.Equal(dec("40.0")))
}

func TestNormalizeToUSD_PlainUSDIsIdentity(t *testing.T) {
	got := services.NormalizeToUSD(dec("50"), domain.CurrencyUSD, nil, testSnapshot())

	assert.True(t, got.FinalAmount.Equal(dec("50")))
	assert.Nil(t, got.RateValue, "identity case must not report a rate")
}

func TestNormalizeToUSD_HalfUpRounding(t *testing.T) {
	// 1 / 40 * 100... pick values that land exactly on a half:
	// 14.6 VES / 36.5 = 0.4 exactly; 14.69 / 36.5 = 0.402465... -> 0.40
	rates := testSnapshot()

	got := services.NormalizeToUSD(dec("14.6"), domain.CurrencyVES, rateTypePtr(domain.RateTypeBCV), rates)
	assert.True(t, got.FinalAmount.Equal(dec("0.4")), "finalAmount = %s", got.FinalAmount)

	// 0.365 VES / 36.5 = 0.005 exactly: rounds half-up to 0.01
	got = services.NormalizeToUSD(dec("0.365"), domain.CurrencyVES, rateTypePtr(domain.RateTypeBCV), rates)
	assert.True(t, got.FinalAmount.Equal(dec("0.01")), "finalAmount = %s", got.FinalAmount)
}
