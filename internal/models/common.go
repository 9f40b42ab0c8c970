package models

import "time"

// SyncFields holds the sync metadata columns shared by synced tables.
type SyncFields struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	IsDeleted bool      `db:"is_deleted"`
}
