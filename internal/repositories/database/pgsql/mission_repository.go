package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hsolorzn/finve_backend/internal/apperrors"
	"github.com/hsolorzn/finve_backend/internal/core/domain"
	portsrepo "github.com/hsolorzn/finve_backend/internal/core/ports/repositories"
	"github.com/hsolorzn/finve_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMissionRepository struct {
	db *pgxpool.Pool
}

func newPgxMissionRepository(db *pgxpool.Pool) portsrepo.MissionRepositoryFacade {
	return &PgxMissionRepository{db: db}
}

var _ portsrepo.MissionRepositoryFacade = (*PgxMissionRepository)(nil)

func toModelMission(d domain.Mission) models.Mission {
	return models.Mission{
		MissionID:       d.MissionID,
		UserID:          d.UserID,
		Title:           d.Title,
		TargetAmount:    d.TargetAmount,
		CurrentAmount:   d.CurrentAmount,
		TargetProgress:  d.TargetProgress,
		CurrentProgress: d.CurrentProgress,
		Deadline:        d.Deadline,
		Status:          string(d.Status),
		Code:            d.Code,
		MissionType:     d.MissionType,
		SyncFields: models.SyncFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
			IsDeleted: d.IsDeleted,
		},
	}
}

func toDomainMission(m models.Mission) domain.Mission {
	return domain.Mission{
		MissionID:       m.MissionID,
		UserID:          m.UserID,
		Title:           m.Title,
		TargetAmount:    m.TargetAmount,
		CurrentAmount:   m.CurrentAmount,
		TargetProgress:  m.TargetProgress,
		CurrentProgress: m.CurrentProgress,
		Deadline:        m.Deadline,
		Status:          domain.MissionStatus(m.Status),
		Code:            m.Code,
		MissionType:     m.MissionType,
		SyncFields: domain.SyncFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
			IsDeleted: m.IsDeleted,
		},
	}
}

const missionColumns = `
	mission_id, user_id, title, target_amount, current_amount,
	target_progress, current_progress, deadline, status, code, mission_type,
	created_at, updated_at, is_deleted`

func scanMission(row pgx.Row) (models.Mission, error) {
	var m models.Mission
	err := row.Scan(
		&m.MissionID,
		&m.UserID,
		&m.Title,
		&m.TargetAmount,
		&m.CurrentAmount,
		&m.TargetProgress,
		&m.CurrentProgress,
		&m.Deadline,
		&m.Status,
		&m.Code,
		&m.MissionType,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.IsDeleted,
	)
	return m, err
}

func (r *PgxMissionRepository) SaveMission(ctx context.Context, mission domain.Mission) error {
	m := toModelMission(mission)
	query := `
        INSERT INTO missions (` + missionColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.db.Exec(ctx, query,
		m.MissionID,
		m.UserID,
		m.Title,
		m.TargetAmount,
		m.CurrentAmount,
		m.TargetProgress,
		m.CurrentProgress,
		m.Deadline,
		m.Status,
		m.Code,
		m.MissionType,
		m.CreatedAt,
		m.UpdatedAt,
		m.IsDeleted,
	)
	if err != nil {
		return fmt.Errorf("failed to save mission: %w", err)
	}
	return nil
}

func (r *PgxMissionRepository) FindMissionByID(ctx context.Context, missionID string, userID string) (*domain.Mission, error) {
	query := `
		SELECT ` + missionColumns + `
		FROM missions
		WHERE mission_id = $1 AND user_id = $2 AND is_deleted = FALSE;
	`
	m, err := scanMission(r.db.QueryRow(ctx, query, missionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find mission by ID %s: %w", missionID, err)
	}

	d := toDomainMission(m)
	return &d, nil
}

func (r *PgxMissionRepository) UpdateMission(ctx context.Context, mission domain.Mission) error {
	m := toModelMission(mission)
	query := `
        UPDATE missions
        SET title = $1, target_amount = $2, current_amount = $3,
            target_progress = $4, current_progress = $5, deadline = $6,
            status = $7, code = $8, mission_type = $9, updated_at = $10
        WHERE mission_id = $11 AND user_id = $12 AND is_deleted = FALSE;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Title,
		m.TargetAmount,
		m.CurrentAmount,
		m.TargetProgress,
		m.CurrentProgress,
		m.Deadline,
		m.Status,
		m.Code,
		m.MissionType,
		m.UpdatedAt,
		m.MissionID,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update mission query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("mission not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxMissionRepository) MarkMissionDeleted(ctx context.Context, missionID string, userID string, deletedAt time.Time) error {
	query := `
        UPDATE missions
        SET is_deleted = TRUE, updated_at = $1
        WHERE mission_id = $2 AND user_id = $3 AND is_deleted = FALSE;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, missionID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark mission as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("mission not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxMissionRepository) ListMissionsChangedSince(ctx context.Context, userID string, since *time.Time) ([]domain.Mission, error) {
	// Same cursor semantics as transactions: tombstones only on
	// incremental pulls, strictly greater-than comparison.
	var (
		query string
		args  []any
	)
	if since == nil {
		query = `
            SELECT ` + missionColumns + `
            FROM missions
            WHERE user_id = $1 AND is_deleted = FALSE
            ORDER BY created_at DESC;
        `
		args = []any{userID}
	} else {
		query = `
            SELECT ` + missionColumns + `
            FROM missions
            WHERE user_id = $1 AND updated_at > $2
            ORDER BY created_at DESC;
        `
		args = []any{userID, *since}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query missions: %w", err)
	}
	defer rows.Close()

	missions := []domain.Mission{}
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mission row: %w", err)
		}
		missions = append(missions, toDomainMission(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating mission rows: %w", rows.Err())
	}

	return missions, nil
}
