package domain

import "time"

// SyncFields holds the reconciliation metadata every synced record carries.
// UpdatedAt is monotonically non-decreasing and is bumped on every mutation,
// soft delete included; it is the value sync cursors compare against.
type SyncFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	IsDeleted bool      `json:"isDeleted"`
}
