package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/juju/clock"

	"procurement_sync/internal/config"
	"procurement_sync/internal/domain"
)

// discoveryFields are the only feed fields matching needs.
var discoveryFields = []string{"procuringEntity", "status", "tenderID"}

// DiscoveryService scans the tender feed for tenders issued by watched
// EDRPOUs and raises one review record per (project, tender) pair.
type DiscoveryService struct {
	watchlist   *WatchlistBuilder
	reviews     ReviewStore
	checkpoints CheckpointStore
	feed        FeedReader
	notifier    Notifier
	clock       clock.Clock
	logger      *slog.Logger
	config      config.DiscoveryConfig
	active      domain.StatusSet
}

func NewDiscoveryService(
	watchlist *WatchlistBuilder,
	reviews ReviewStore,
	checkpoints CheckpointStore,
	feed FeedReader,
	notifier Notifier,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.DiscoveryConfig,
) *DiscoveryService {
	return &DiscoveryService{
		watchlist:   watchlist,
		reviews:     reviews,
		checkpoints: checkpoints,
		feed:        feed,
		notifier:    notifier,
		clock:       clk,
		logger:      logger.With("component", "discovery", "job", cfg.JobName),
		config:      cfg,
		active:      domain.NewStatusSet(cfg.ActiveStatuses...),
	}
}

// feedCursor is the resume position of a scan plus the number of consecutive
// pages that did not move it.
type feedCursor struct {
	position string
	stalls   int
}

// advanceCursor moves c to next. A missing or unchanged next position counts
// as a stall; stop is set once threshold consecutive stalls were seen.
func advanceCursor(c feedCursor, next string, threshold int) (updated feedCursor, advanced, stop bool) {
	if next == "" || next == c.position {
		c.stalls++
		return c, false, c.stalls >= threshold
	}
	return feedCursor{position: next}, true, false
}

type pageOutcome struct {
	matches int
	errors  []string
}

// Discover runs one bounded scan. Everything except a failed checkpoint write
// is reported through the result; the returned error is reserved for that.
func (s *DiscoveryService) Discover(ctx context.Context) (*domain.DiscoveryResult, error) {
	startTime := s.clock.Now()
	result := &domain.DiscoveryResult{Errors: []string{}}

	watchlist, err := s.watchlist.Build(ctx)
	if err != nil {
		s.logger.Error("failed to build watchlist", "error", err)
		result.Errors = append(result.Errors, fmt.Sprintf("watchlist error: %v", err))
		return result, nil
	}

	if len(watchlist) == 0 {
		s.logger.Info("no funded projects with EDRPOUs to watch")
		return result, nil
	}

	s.logger.Info("watching identifiers",
		"edrpous", len(watchlist),
		"projects", watchlist.ProjectCount(),
	)

	start, err := s.startPosition(ctx)
	if err != nil {
		s.logger.Error("failed to load checkpoint", "error", err)
		result.Errors = append(result.Errors, fmt.Sprintf("checkpoint error: %v", err))
		return result, nil
	}

	cur := feedCursor{position: start}

	for page := 0; page < s.config.MaxPages; page++ {
		feedPage, err := s.feed.FetchFeedPage(ctx, domain.FeedQuery{
			Offset: cur.position,
			Limit:  s.config.PageSize,
			Fields: discoveryFields,
		})
		if err != nil {
			s.logger.Error("feed page error", "offset", cur.position, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("feed error: %v", err))
			break
		}

		result.PagesScanned++

		if len(feedPage.Items) == 0 {
			break
		}

		result.FeedItemsProcessed += len(feedPage.Items)

		outcome := s.matchPage(ctx, watchlist, feedPage.Items)
		result.MatchesFound += outcome.matches
		result.Errors = append(result.Errors, outcome.errors...)

		var advanced, stop bool
		cur, advanced, stop = advanceCursor(cur, feedPage.NextOffset, s.config.StallThreshold)
		if advanced {
			if err := s.saveCheckpoint(ctx, cur.position); err != nil {
				return result, err
			}
			result.LastPosition = cur.position
		}
		if stop {
			s.logger.Warn("feed offset stalled, stopping", "offset", cur.position, "stalls", cur.stalls)
			break
		}
	}

	if cur.position != "" {
		if err := s.saveCheckpoint(ctx, cur.position); err != nil {
			return result, err
		}
		result.LastPosition = cur.position
	}

	s.logger.Info("discovery completed",
		"pages", result.PagesScanned,
		"items", result.FeedItemsProcessed,
		"matches", result.MatchesFound,
		"errors", len(result.Errors),
		"offset", result.LastPosition,
		"duration", s.clock.Now().Sub(startTime),
	)

	return result, nil
}

func (s *DiscoveryService) startPosition(ctx context.Context) (string, error) {
	cp, err := s.checkpoints.Get(ctx, s.config.JobName)
	if err != nil {
		return "", err
	}

	if cp != nil && cp.Position != "" {
		s.logger.Info("resuming from offset", "offset", cp.Position)
		return cp.Position, nil
	}

	start := s.clock.Now().Add(-s.config.Lookback).UTC().Format(time.RFC3339)
	s.logger.Info("first run, starting from lookback", "offset", start, "lookback", s.config.Lookback)
	return start, nil
}

func (s *DiscoveryService) saveCheckpoint(ctx context.Context, position string) error {
	cp := &domain.Checkpoint{
		JobName:   s.config.JobName,
		Position:  position,
		UpdatedAt: s.clock.Now(),
	}
	if err := s.checkpoints.Upsert(ctx, cp); err != nil {
		s.logger.Error("failed to save checkpoint", "offset", position, "error", err)
		return fmt.Errorf("save checkpoint: %w", err)
	}
	s.logger.Debug("saved offset", "offset", position)
	return nil
}

func (s *DiscoveryService) matchPage(ctx context.Context, watchlist domain.Watchlist, items []domain.FeedItem) pageOutcome {
	var out pageOutcome

	for _, item := range items {
		edrpou := item.ProcuringEntity.Identifier
		if edrpou == "" {
			continue
		}
		projects, ok := watchlist[edrpou]
		if !ok {
			continue
		}
		if !s.active.Has(item.Status) {
			continue
		}

		entityName := item.ProcuringEntity.Name
		if entityName == "" {
			entityName = edrpou
		}

		candidate := domain.DiscoveryCandidate{
			RecordID:   item.ID,
			DisplayID:  item.DisplayID(),
			EntityName: entityName,
			Status:     item.Status,
			URL:        domain.TenderURL(item.DisplayID()),
		}

		for i := range projects {
			project := &projects[i]
			raised, err := s.raiseCandidate(ctx, project, edrpou, candidate)
			if err != nil {
				s.logger.Error("failed to raise match",
					"project_id", project.ID,
					"tender_id", candidate.DisplayID,
					"error", err,
				)
				out.errors = append(out.errors, fmt.Sprintf("notify error (%s): %v", project.FacilityName, err))
				continue
			}
			if raised {
				out.matches++
			}
		}
	}

	return out
}

// raiseCandidate records and announces a match unless one already exists for
// the pair. It reports whether a new match was raised.
func (s *DiscoveryService) raiseCandidate(ctx context.Context, project *domain.Project, edrpou string, c domain.DiscoveryCandidate) (bool, error) {
	exists, err := s.reviews.HasDiscovery(ctx, project.ID, c.RecordID)
	if err != nil {
		return false, fmt.Errorf("check existing match: %w", err)
	}
	if exists {
		return false, nil
	}

	s.logger.Info("match found",
		"tender_id", c.DisplayID,
		"entity", c.EntityName,
		"project", project.FacilityName,
		"edrpou", edrpou,
	)

	record := domain.NewDiscoveryRecord(project.ID, c)
	if err := s.reviews.Create(ctx, &record); err != nil {
		return false, fmt.Errorf("create review record: %w", err)
	}

	err = s.notifier.SendAdminMatchNotice(ctx, domain.AdminMatchNotice{
		FacilityName: project.FacilityName,
		EDRPOU:       edrpou,
		TenderID:     c.DisplayID,
		EntityName:   c.EntityName,
		TenderStatus: c.Status,
		URL:          c.URL,
	})
	if err != nil {
		return false, fmt.Errorf("send admin notice: %w", err)
	}

	return true, nil
}
