package service

import (
	"context"
	"fmt"

	"procurement_sync/internal/domain"
)

// WatchlistBuilder derives the funded, unlinked projects eligible for feed matching.
type WatchlistBuilder struct {
	projects   ProjectStore
	donations  DonationStore
	qualifying []string
}

func NewWatchlistBuilder(projects ProjectStore, donations DonationStore, qualifying []string) *WatchlistBuilder {
	return &WatchlistBuilder{
		projects:   projects,
		donations:  donations,
		qualifying: qualifying,
	}
}

// Build groups eligible projects by EDRPOU. An empty watchlist is not an error.
func (b *WatchlistBuilder) Build(ctx context.Context) (domain.Watchlist, error) {
	candidates, err := b.projects.ListDiscoveryCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list discovery candidates: %w", err)
	}

	watchlist := make(domain.Watchlist)
	if len(candidates) == 0 {
		return watchlist, nil
	}

	ids := make([]string, len(candidates))
	for i, p := range candidates {
		ids[i] = p.ID
	}

	fundedIDs, err := b.donations.FundedProjectIDs(ctx, ids, b.qualifying)
	if err != nil {
		return nil, fmt.Errorf("find funded projects: %w", err)
	}

	funded := make(map[string]struct{}, len(fundedIDs))
	for _, id := range fundedIDs {
		funded[id] = struct{}{}
	}

	for _, p := range candidates {
		if p.EDRPOU == nil || *p.EDRPOU == "" || !p.Unlinked() {
			continue
		}
		if _, ok := funded[p.ID]; !ok {
			continue
		}
		watchlist[*p.EDRPOU] = append(watchlist[*p.EDRPOU], p)
	}

	return watchlist, nil
}
