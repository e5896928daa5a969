package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"procurement_sync/internal/domain"
)

type ProjectStore interface {
	// ListDiscoveryCandidates returns projects with an EDRPOU and no linked tender.
	ListDiscoveryCandidates(ctx context.Context) ([]domain.Project, error)
	// ListPollable returns linked projects whose status is not in terminal.
	ListPollable(ctx context.Context, terminal []string) ([]domain.Project, error)
	UpdateStatus(ctx context.Context, projectID, status string, syncedAt time.Time) error
	TouchLastSync(ctx context.Context, projectID string, syncedAt time.Time) error
}

type DonationStore interface {
	FundedProjectIDs(ctx context.Context, projectIDs []string, statuses []string) ([]string, error)
	DistinctDonors(ctx context.Context, projectID string, statuses []string) ([]domain.Donor, error)
}

type ReviewStore interface {
	HasDiscovery(ctx context.Context, projectID, recordID string) (bool, error)
	Create(ctx context.Context, record *domain.ReviewRecord) error
}

type CheckpointStore interface {
	Get(ctx context.Context, jobName string) (*domain.Checkpoint, error)
	Upsert(ctx context.Context, cp *domain.Checkpoint) error
}

type FeedReader interface {
	FetchFeedPage(ctx context.Context, q domain.FeedQuery) (*domain.FeedPage, error)
}

type TenderFetcher interface {
	FetchTender(ctx context.Context, uuid string) (*domain.Tender, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Notifier interface {
	SendAdminMatchNotice(ctx context.Context, n domain.AdminMatchNotice) error
	SendDonorUpdateNotice(ctx context.Context, n domain.DonorUpdateNotice) error
	SendSyncFailureNotice(ctx context.Context, n domain.SyncFailureNotice) error
}
