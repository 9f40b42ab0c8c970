package repositories

import (
	"context"
	"time"

	"github.com/hsolorzn/finve_backend/internal/core/domain"
)

// MissionReader defines read operations for missions.
type MissionReader interface {
	// FindMissionByID retrieves a mission scoped by both id and owner.
	FindMissionByID(ctx context.Context, missionID string, userID string) (*domain.Mission, error)

	// ListMissionsChangedSince applies the same cursor semantics as the
	// transaction listing: nil cursor = non-deleted only, non-nil cursor =
	// everything updated strictly after it, tombstones included.
	ListMissionsChangedSince(ctx context.Context, userID string, since *time.Time) ([]domain.Mission, error)
}

// MissionWriter defines write operations for missions.
type MissionWriter interface {
	// SaveMission persists a new mission.
	SaveMission(ctx context.Context, mission domain.Mission) error

	// UpdateMission persists the full mutable row, scoped by id and owner.
	UpdateMission(ctx context.Context, mission domain.Mission) error

	// MarkMissionDeleted soft-deletes the mission and bumps updated_at.
	MarkMissionDeleted(ctx context.Context, missionID string, userID string, deletedAt time.Time) error
}

// MissionRepositoryFacade combines all mission repository interfaces.
type MissionRepositoryFacade interface {
	MissionReader
	MissionWriter
}
