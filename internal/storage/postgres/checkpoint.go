package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"procurement_sync/internal/domain"
)

type CheckpointStore struct {
	db *sqlx.DB
}

func NewCheckpointStore(db *sqlx.DB) *CheckpointStore {
	return &CheckpointStore{db: db}
}

func (s *CheckpointStore) Get(ctx context.Context, jobName string) (*domain.Checkpoint, error) {
	var cp domain.Checkpoint
	query := `
		SELECT job_name, position, updated_at
		FROM sync_checkpoints
		WHERE job_name = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &cp, query, jobName)
	if errors.Is(err, sql.ErrNoRows) {
		// Never saved: empty position tells the caller to synthesize a start
		return &domain.Checkpoint{JobName: jobName}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get checkpoint %s: %w", jobName, err)
	}
	return &cp, nil
}

func (s *CheckpointStore) Upsert(ctx context.Context, cp *domain.Checkpoint) error {
	query := `
		INSERT INTO sync_checkpoints (job_name, position, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE SET
			position = EXCLUDED.position,
			updated_at = EXCLUDED.updated_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, cp.JobName, cp.Position, cp.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert checkpoint %s: %w", cp.JobName, err)
	}
	return nil
}
