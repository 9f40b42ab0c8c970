package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MissionStatus tracks the lifecycle of a goal.
type MissionStatus string

const (
	MissionActive    MissionStatus = "active"
	MissionCompleted MissionStatus = "completed"
	MissionPaused    MissionStatus = "paused"
	MissionLocked    MissionStatus = "locked"
)

// IsValid reports whether s is one of the known mission statuses.
func (s MissionStatus) IsValid() bool {
	switch s {
	case MissionActive, MissionCompleted, MissionPaused, MissionLocked:
		return true
	}
	return false
}

// Mission tracks a user's progress toward a financial or habitual goal.
// Financial goals use the amount pair; abstract habit goals use the progress
// counters. Both pairs are optional. Missions share the sync metadata of
// transactions and participate in the same tombstone protocol.
type Mission struct {
	MissionID       string           `json:"id"`
	UserID          string           `json:"userId"`
	Title           string           `json:"title"`
	TargetAmount    *decimal.Decimal `json:"targetAmount,omitempty"`
	CurrentAmount   *decimal.Decimal `json:"currentAmount,omitempty"`
	TargetProgress  *int             `json:"targetProgress,omitempty"`
	CurrentProgress *int             `json:"currentProgress,omitempty"`
	Deadline        *time.Time       `json:"deadline,omitempty"`
	Status          MissionStatus    `json:"status"`
	Code            string           `json:"code"`
	MissionType     string           `json:"missionType"`
	SyncFields
}
