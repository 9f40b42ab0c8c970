package dto

import (
	"time"

	"github.com/hsolorzn/finve_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMissionRequest defines the data needed to create a mission. Status
// defaults to "active" when omitted.
type CreateMissionRequest struct {
	Title           string           `json:"title" binding:"required,max=100"`
	TargetAmount    *decimal.Decimal `json:"targetAmount" binding:"omitempty"`
	CurrentAmount   *decimal.Decimal `json:"currentAmount" binding:"omitempty"`
	TargetProgress  *int             `json:"targetProgress" binding:"omitempty,min=0"`
	CurrentProgress *int             `json:"currentProgress" binding:"omitempty,min=0"`
	Deadline        *time.Time       `json:"deadline" binding:"omitempty"`
	Status          *string          `json:"status" binding:"omitempty,oneof=active completed paused locked"`
	Code            string           `json:"code" binding:"required"`
	MissionType     string           `json:"missionType" binding:"required"`
}

// UpdateMissionRequest is a shallow patch; only non-nil fields are applied.
type UpdateMissionRequest struct {
	Title           *string          `json:"title" binding:"omitempty,max=100"`
	TargetAmount    *decimal.Decimal `json:"targetAmount" binding:"omitempty"`
	CurrentAmount   *decimal.Decimal `json:"currentAmount" binding:"omitempty"`
	TargetProgress  *int             `json:"targetProgress" binding:"omitempty,min=0"`
	CurrentProgress *int             `json:"currentProgress" binding:"omitempty,min=0"`
	Deadline        *time.Time       `json:"deadline" binding:"omitempty"`
	Status          *string          `json:"status" binding:"omitempty,oneof=active completed paused locked"`
	Code            *string          `json:"code" binding:"omitempty"`
	MissionType     *string          `json:"missionType" binding:"omitempty"`
}

// MissionResponse defines the data returned for a mission.
type MissionResponse struct {
	ID              string           `json:"id"`
	UserID          string           `json:"userId"`
	Title           string           `json:"title"`
	TargetAmount    *decimal.Decimal `json:"targetAmount,omitempty"`
	CurrentAmount   *decimal.Decimal `json:"currentAmount,omitempty"`
	TargetProgress  *int             `json:"targetProgress,omitempty"`
	CurrentProgress *int             `json:"currentProgress,omitempty"`
	Deadline        *time.Time       `json:"deadline,omitempty"`
	Status          string           `json:"status"`
	Code            string           `json:"code"`
	MissionType     string           `json:"missionType"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
	IsDeleted       bool             `json:"isDeleted"`
}

// ToMissionResponse converts a domain.Mission to its response DTO.
func ToMissionResponse(m *domain.Mission) MissionResponse {
	return MissionResponse{
		ID:              m.MissionID,
		UserID:          m.UserID,
		Title:           m.Title,
		TargetAmount:    m.TargetAmount,
		CurrentAmount:   m.CurrentAmount,
		TargetProgress:  m.TargetProgress,
		CurrentProgress: m.CurrentProgress,
		Deadline:        m.Deadline,
		Status:          string(m.Status),
		Code:            m.Code,
		MissionType:     m.MissionType,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		IsDeleted:       m.IsDeleted,
	}
}

// ToMissionSyncResponse shapes a mission sync batch into tagged entries.
func ToMissionSyncResponse(missions []domain.Mission, serverTime time.Time) SyncResponse[MissionResponse] {
	entries := make([]SyncEntry[MissionResponse], 0, len(missions))
	for i := range missions {
		m := &missions[i]
		if m.IsDeleted {
			entries = append(entries, SyncEntry[MissionResponse]{
				Kind:      SyncEntryDeleted,
				Tombstone: &Tombstone{ID: m.MissionID, UpdatedAt: m.UpdatedAt},
			})
			continue
		}
		resp := ToMissionResponse(m)
		entries = append(entries, SyncEntry[MissionResponse]{
			Kind:   SyncEntryActive,
			Record: &resp,
		})
	}
	return SyncResponse[MissionResponse]{Entries: entries, ServerTime: serverTime}
}
