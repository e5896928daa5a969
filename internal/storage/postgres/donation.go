package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"procurement_sync/internal/domain"
)

type DonationStore struct {
	db *sqlx.DB
}

func NewDonationStore(db *sqlx.DB) *DonationStore {
	return &DonationStore{db: db}
}

// FundedProjectIDs returns the subset of projectIDs with at least one donation
// in one of statuses.
func (s *DonationStore) FundedProjectIDs(ctx context.Context, projectIDs []string, statuses []string) ([]string, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT DISTINCT project_id
		FROM donations
		WHERE project_id = ANY($1) AND status = ANY($2)`

	var ids []string
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &ids, query, pq.Array(projectIDs), pq.Array(statuses))
	if err != nil {
		return nil, fmt.Errorf("select funded projects: %w", err)
	}
	return ids, nil
}

func (s *DonationStore) DistinctDonors(ctx context.Context, projectID string, statuses []string) ([]domain.Donor, error) {
	query := `
		SELECT DISTINCT ON (donor_email) donor_name, donor_email
		FROM donations
		WHERE project_id = $1 AND status = ANY($2)
		ORDER BY donor_email, donor_name`

	var donors []domain.Donor
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &donors, query, projectID, pq.Array(statuses))
	if err != nil {
		return nil, fmt.Errorf("select donors for %s: %w", projectID, err)
	}
	return donors, nil
}
