package dto

import "time"

// SyncEntryKind tags a sync entry as a live record or a tombstone.
type SyncEntryKind string

const (
	SyncEntryActive  SyncEntryKind = "active"
	SyncEntryDeleted SyncEntryKind = "deleted"
)

// Tombstone instructs the client to remove its local copy of a record.
type Tombstone struct {
	ID        string    `json:"id"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SyncEntry is one element of a sync batch. Exactly one of Record and
// Tombstone is set, matching Kind.
type SyncEntry[T any] struct {
	Kind      SyncEntryKind `json:"kind"`
	Record    *T            `json:"record,omitempty"`
	Tombstone *Tombstone    `json:"tombstone,omitempty"`
}

// SyncResponse is the envelope for an incremental pull. The client's next
// cursor is the maximum UpdatedAt across the batch; ServerTime is returned
// for clients that prefer to anchor their cursor to the server clock.
type SyncResponse[T any] struct {
	Entries    []SyncEntry[T] `json:"entries"`
	ServerTime time.Time      `json:"serverTime"`
}
