package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Mission mirrors the missions table.
type Mission struct {
	MissionID       string           `db:"mission_id"` // Primary Key (UUID)
	UserID          string           `db:"user_id"`
	Title           string           `db:"title"`
	TargetAmount    *decimal.Decimal `db:"target_amount"`
	CurrentAmount   *decimal.Decimal `db:"current_amount"`
	TargetProgress  *int             `db:"target_progress"`
	CurrentProgress *int             `db:"current_progress"`
	Deadline        *time.Time       `db:"deadline"`
	Status          string           `db:"status"` // active | completed | paused | locked
	Code            string           `db:"code"`
	MissionType     string           `db:"mission_type"`
	SyncFields
}
