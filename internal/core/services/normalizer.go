package services

import (
	"github.com/hsolorzn/finve_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NormalizedAmount is the outcome of re-expressing a recorded amount in USD.
// RateValue is nil when no conversion was applied.
type NormalizedAmount struct {
	FinalAmount decimal.Decimal
	RateValue   *decimal.Decimal
}

// NormalizeToUSD converts an amount recorded in the given currency, under an
// optional rate regime, into canonical USD. It is pure and performs no I/O;
// callers validate rate type membership before invoking it.
//
// Three cases, in order:
//  1. VES with a regime: divide by the chosen rate. The regime only selects
//     which rate, never the formula shape.
//  2. USD with a regime (an arbitrage entry: a USD amount whose value was
//     actually set at a non-official local rate): multiply by the chosen
//     rate, divide by the official rate.
//  3. USD with no regime: identity, no rate reported.
//
// Rounding is half-up to 2 decimal places, applied once at the end of each
// formula, never at intermediate steps.
func NormalizeToUSD(amount decimal.Decimal, currency domain.Currency, rateType *domain.RateType, rates domain.RateSnapshot) NormalizedAmount {
	if rateType != nil && currency == domain.CurrencyVES {
		rate := rates.Rate(*rateType)
		return NormalizedAmount{
			FinalAmount: amount.Div(rate).Round(2),
			RateValue:   &rate,
		}
	}
	if rateType != nil && currency == domain.CurrencyUSD {
		rate := rates.Rate(*rateType)
		return NormalizedAmount{
			FinalAmount: amount.Mul(rate).Div(rates.BCV).Round(2),
			RateValue:   &rate,
		}
	}
	return NormalizedAmount{FinalAmount: amount}
}
