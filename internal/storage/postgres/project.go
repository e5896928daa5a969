package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"procurement_sync/internal/domain"
)

const projectColumns = `id, facility_name, edrpou, prozorro_tender_uuid, prozorro_tender_id,
	prozorro_status, prozorro_last_sync`

type ProjectStore struct {
	db *sqlx.DB
}

func NewProjectStore(db *sqlx.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

func (s *ProjectStore) ListDiscoveryCandidates(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE edrpou IS NOT NULL AND edrpou <> ''
			AND prozorro_tender_uuid IS NULL
			AND prozorro_tender_id IS NULL`

	var projects []domain.Project
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &projects, query); err != nil {
		return nil, fmt.Errorf("select discovery candidates: %w", err)
	}
	return projects, nil
}

// ListPollable treats a NULL status as not yet polled, never as terminal.
func (s *ProjectStore) ListPollable(ctx context.Context, terminal []string) ([]domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE prozorro_tender_uuid IS NOT NULL
			AND prozorro_tender_id IS NOT NULL
			AND (prozorro_status IS NULL OR prozorro_status <> ALL($1))
		ORDER BY id`

	var projects []domain.Project
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &projects, query, pq.Array(terminal)); err != nil {
		return nil, fmt.Errorf("select pollable projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectStore) UpdateStatus(ctx context.Context, projectID, status string, syncedAt time.Time) error {
	query := `UPDATE projects SET prozorro_status = $2, prozorro_last_sync = $3 WHERE id = $1`

	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, projectID, status, syncedAt); err != nil {
		return fmt.Errorf("update project %s status: %w", projectID, err)
	}
	return nil
}

func (s *ProjectStore) TouchLastSync(ctx context.Context, projectID string, syncedAt time.Time) error {
	query := `UPDATE projects SET prozorro_last_sync = $2 WHERE id = $1`

	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, projectID, syncedAt); err != nil {
		return fmt.Errorf("touch project %s: %w", projectID, err)
	}
	return nil
}
