package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money leaving from money entering a ledger.
type TransactionType string

const (
	Expense TransactionType = "expense"
	Income  TransactionType = "income"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == Expense || t == Income
}

// Currency identifies the currency an amount was originally recorded in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyVES Currency = "VES"
)

// IsValid reports whether c is a supported currency.
func (c Currency) IsValid() bool {
	return c == CurrencyUSD || c == CurrencyVES
}

// RateType names one of the competing exchange-rate regimes used to convert
// between USD and the local currency.
type RateType string

const (
	RateTypeBCV  RateType = "bcv"  // official central bank rate
	RateTypeEuro RateType = "euro" // derived from the official rate
	RateTypeUSDT RateType = "usdt" // parallel market rate
)

// IsValid reports whether rt is one of the known rate regimes.
func (rt RateType) IsValid() bool {
	return rt == RateTypeBCV || rt == RateTypeEuro || rt == RateTypeUSDT
}

// Transaction is a single ledger record owned by exactly one user. Amount is
// always the canonical USD value; the Original* fields preserve the
// conversion context captured at entry time so the applied rate is never
// lost. UserID is immutable once the record is created.
type Transaction struct {
	TransactionID    string           `json:"id"`
	UserID           string           `json:"userId"`
	Amount           decimal.Decimal  `json:"amount"`
	Description      string           `json:"description"`
	Category         string           `json:"category"`
	Date             time.Time        `json:"date"`
	Type             TransactionType  `json:"type"`
	OriginalAmount   *decimal.Decimal `json:"originalAmount,omitempty"`
	OriginalCurrency *Currency        `json:"originalCurrency,omitempty"`
	RateType         *RateType        `json:"rateType,omitempty"`
	RateValue        *decimal.Decimal `json:"rateValue,omitempty"`
	SyncFields
}
