package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hsolorzn/finve_backend/internal/apperrors"
	"github.com/hsolorzn/finve_backend/internal/core/domain"
	portsrepo "github.com/hsolorzn/finve_backend/internal/core/ports/repositories"
	"github.com/hsolorzn/finve_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MissionService provides goal tracking with the same sync and soft-delete
// protocol as transactions.
type MissionService struct {
	missionRepo portsrepo.MissionRepositoryFacade
}

// NewMissionService creates a new MissionService.
func NewMissionService(missionRepo portsrepo.MissionRepositoryFacade) *MissionService {
	return &MissionService{missionRepo: missionRepo}
}

// CreateMission persists a new mission owned by userID.
func (s *MissionService) CreateMission(ctx context.Context, req dto.CreateMissionRequest, userID string) (*domain.Mission, error) {
	title := strings.TrimSpace(req.Title)

	fields := map[string]string{}
	if title == "" {
		fields["title"] = "must not be empty"
	}
	if req.TargetAmount != nil && req.TargetAmount.LessThanOrEqual(decimal.Zero) {
		fields["targetAmount"] = "must be greater than zero"
	}
	if req.CurrentAmount != nil && req.CurrentAmount.IsNegative() {
		fields["currentAmount"] = "must not be negative"
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	status := domain.MissionActive
	if req.Status != nil {
		status = domain.MissionStatus(*req.Status)
	}

	now := time.Now().UTC()
	mission := domain.Mission{
		MissionID:       uuid.NewString(),
		UserID:          userID,
		Title:           title,
		TargetAmount:    req.TargetAmount,
		CurrentAmount:   req.CurrentAmount,
		TargetProgress:  req.TargetProgress,
		CurrentProgress: req.CurrentProgress,
		Deadline:        req.Deadline,
		Status:          status,
		Code:            req.Code,
		MissionType:     req.MissionType,
		SyncFields: domain.SyncFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.missionRepo.SaveMission(ctx, mission); err != nil {
		return nil, fmt.Errorf("failed to create mission in service: %w", err)
	}

	return &mission, nil
}

// UpdateMission applies a shallow patch onto the stored mission and writes
// the full row back, last writer wins.
func (s *MissionService) UpdateMission(ctx context.Context, missionID string, userID string, req dto.UpdateMissionRequest) (*domain.Mission, error) {
	mission, err := s.missionRepo.FindMissionByID(ctx, missionID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mission for update: %w", err)
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.NewValidationError(map[string]string{"title": "must not be empty"})
		}
		mission.Title = title
	}
	if req.TargetAmount != nil {
		mission.TargetAmount = req.TargetAmount
	}
	if req.CurrentAmount != nil {
		mission.CurrentAmount = req.CurrentAmount
	}
	if req.TargetProgress != nil {
		mission.TargetProgress = req.TargetProgress
	}
	if req.CurrentProgress != nil {
		mission.CurrentProgress = req.CurrentProgress
	}
	if req.Deadline != nil {
		mission.Deadline = req.Deadline
	}
	if req.Status != nil {
		mission.Status = domain.MissionStatus(*req.Status)
	}
	if req.Code != nil {
		mission.Code = *req.Code
	}
	if req.MissionType != nil {
		mission.MissionType = *req.MissionType
	}
	mission.UpdatedAt = time.Now().UTC()

	if err := s.missionRepo.UpdateMission(ctx, *mission); err != nil {
		return nil, fmt.Errorf("failed to update mission in service: %w", err)
	}

	return mission, nil
}

// SoftDeleteMission flags the mission deleted and bumps UpdatedAt.
func (s *MissionService) SoftDeleteMission(ctx context.Context, missionID string, userID string) (*domain.Mission, error) {
	mission, err := s.missionRepo.FindMissionByID(ctx, missionID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mission for delete: %w", err)
	}

	deletedAt := time.Now().UTC()
	if err := s.missionRepo.MarkMissionDeleted(ctx, missionID, userID, deletedAt); err != nil {
		return nil, fmt.Errorf("failed to soft delete mission in service: %w", err)
	}

	mission.IsDeleted = true
	mission.UpdatedAt = deletedAt
	return mission, nil
}

// SyncMissions resolves a sync cursor into changed missions, tombstones
// included on incremental pulls.
func (s *MissionService) SyncMissions(ctx context.Context, userID string, lastSync *time.Time) ([]domain.Mission, error) {
	missions, err := s.missionRepo.ListMissionsChangedSince(ctx, userID, lastSync)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions in service: %w", err)
	}
	if missions == nil {
		return []domain.Mission{}, nil
	}
	return missions, nil
}
