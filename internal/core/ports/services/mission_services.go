package services

import (
	"context"
	"time"

	"github.com/hsolorzn/finve_backend/internal/core/domain"
	"github.com/hsolorzn/finve_backend/internal/dto"
)

// MissionReaderSvc defines read operations for missions.
type MissionReaderSvc interface {
	// SyncMissions applies the same cursor semantics as SyncTransactions.
	SyncMissions(ctx context.Context, userID string, lastSync *time.Time) ([]domain.Mission, error)
}

// MissionWriterSvc defines write operations for missions.
type MissionWriterSvc interface {
	// CreateMission persists a new mission for the user.
	CreateMission(ctx context.Context, req dto.CreateMissionRequest, userID string) (*domain.Mission, error)

	// UpdateMission applies a shallow patch to an existing mission.
	UpdateMission(ctx context.Context, missionID string, userID string, req dto.UpdateMissionRequest) (*domain.Mission, error)

	// SoftDeleteMission flags the mission deleted and returns the
	// resulting tombstone state.
	SoftDeleteMission(ctx context.Context, missionID string, userID string) (*domain.Mission, error)
}

// MissionSvcFacade combines all mission service interfaces.
type MissionSvcFacade interface {
	MissionReaderSvc
	MissionWriterSvc
}
