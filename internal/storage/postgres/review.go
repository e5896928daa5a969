package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"procurement_sync/internal/domain"
)

type ReviewStore struct {
	db *sqlx.DB
}

func NewReviewStore(db *sqlx.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

func (s *ReviewStore) HasDiscovery(ctx context.Context, projectID, recordID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM project_updates
			WHERE project_id = $1 AND type = $2 AND external_record_id = $3
		)`

	var exists bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists, query, projectID, domain.ReviewKindDiscovery, recordID)
	if err != nil {
		return false, fmt.Errorf("check discovery record: %w", err)
	}
	return exists, nil
}

// Create assigns an id when the record has none and fills CreatedAt from the row.
func (s *ReviewStore) Create(ctx context.Context, record *domain.ReviewRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	metadata, err := json.Marshal(record.Payload())
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	query := `
		INSERT INTO project_updates (
			id, project_id, type, is_public, title, message, external_record_id, metadata
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		RETURNING created_at`

	err = GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		record.ID,
		record.ProjectID,
		record.Kind,
		record.Public,
		record.Title,
		record.Message,
		record.ExternalRecordID(),
		string(metadata),
	).Scan(&record.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert project update: %w", err)
	}
	return nil
}
