package dto

import (
	"time"

	"github.com/hsolorzn/finve_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a transaction.
// Amount is interpreted in OriginalCurrency when one is given; the service
// normalizes it to USD against the current rate snapshot. The custom
// "ratetype" and "txntype" validators are registered at router setup.
type CreateTransactionRequest struct {
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	Description      string          `json:"description" binding:"required,max=100"`
	Category         string          `json:"category" binding:"required"`
	Date             time.Time       `json:"date" binding:"required"`
	Type             string          `json:"type" binding:"required,txntype"`
	OriginalCurrency *string         `json:"originalCurrency" binding:"omitempty,oneof=USD VES"`
	RateType         *string         `json:"rateType" binding:"omitempty,ratetype"`
}

// UpdateTransactionRequest is a shallow patch: only non-nil fields are
// applied onto the stored record. The whole row is then written back, so two
// concurrent patches resolve last-writer-wins.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"omitempty"`
	Description *string          `json:"description" binding:"omitempty,max=100"`
	Category    *string          `json:"category" binding:"omitempty"`
	Date        *time.Time       `json:"date" binding:"omitempty"`
	Type        *string          `json:"type" binding:"omitempty,txntype"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID               string           `json:"id"`
	UserID           string           `json:"userId"`
	Amount           decimal.Decimal  `json:"amount"`
	Description      string           `json:"description"`
	Category         string           `json:"category"`
	Date             time.Time        `json:"date"`
	Type             string           `json:"type"`
	OriginalAmount   *decimal.Decimal `json:"originalAmount,omitempty"`
	OriginalCurrency *string          `json:"originalCurrency,omitempty"`
	RateType         *string          `json:"rateType,omitempty"`
	RateValue        *decimal.Decimal `json:"rateValue,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	IsDeleted        bool             `json:"isDeleted"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:             txn.TransactionID,
		UserID:         txn.UserID,
		Amount:         txn.Amount,
		Description:    txn.Description,
		Category:       txn.Category,
		Date:           txn.Date,
		Type:           string(txn.Type),
		OriginalAmount: txn.OriginalAmount,
		RateValue:      txn.RateValue,
		CreatedAt:      txn.CreatedAt,
		UpdatedAt:      txn.UpdatedAt,
		IsDeleted:      txn.IsDeleted,
	}
	if txn.OriginalCurrency != nil {
		cur := string(*txn.OriginalCurrency)
		resp.OriginalCurrency = &cur
	}
	if txn.RateType != nil {
		rt := string(*txn.RateType)
		resp.RateType = &rt
	}
	return resp
}

// ToTransactionSyncResponse shapes a sync batch into tagged entries so the
// two client actions (upsert vs remove) are structurally distinct.
func ToTransactionSyncResponse(txns []domain.Transaction, serverTime time.Time) SyncResponse[TransactionResponse] {
	entries := make([]SyncEntry[TransactionResponse], 0, len(txns))
	for i := range txns {
		txn := &txns[i]
		if txn.IsDeleted {
			entries = append(entries, SyncEntry[TransactionResponse]{
				Kind:      SyncEntryDeleted,
				Tombstone: &Tombstone{ID: txn.TransactionID, UpdatedAt: txn.UpdatedAt},
			})
			continue
		}
		resp := ToTransactionResponse(txn)
		entries = append(entries, SyncEntry[TransactionResponse]{
			Kind:   SyncEntryActive,
			Record: &resp,
		})
	}
	return SyncResponse[TransactionResponse]{Entries: entries, ServerTime: serverTime}
}
