package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/juju/clock"
	"golang.org/x/sync/errgroup"

	"procurement_sync/internal/config"
	"procurement_sync/internal/domain"
)

// PollingService re-reads every linked, non-terminal tender and records
// status transitions.
type PollingService struct {
	projects  ProjectStore
	reviews   ReviewStore
	tenders   TenderFetcher
	txManager TransactionManager
	donors    *DonorNotifier
	clock     clock.Clock
	logger    *slog.Logger
	config    config.PollingConfig
}

func NewPollingService(
	projects ProjectStore,
	reviews ReviewStore,
	tenders TenderFetcher,
	txManager TransactionManager,
	donors *DonorNotifier,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.PollingConfig,
) *PollingService {
	return &PollingService{
		projects:  projects,
		reviews:   reviews,
		tenders:   tenders,
		txManager: txManager,
		donors:    donors,
		clock:     clk,
		logger:    logger.With("component", "polling"),
		config:    cfg,
	}
}

// Poll checks each pollable project independently; a failure on one project
// is recorded and never stops the others.
func (s *PollingService) Poll(ctx context.Context) (*domain.PollResult, error) {
	startTime := s.clock.Now()
	result := &domain.PollResult{Errors: []string{}}

	projects, err := s.projects.ListPollable(ctx, s.config.TerminalStatuses)
	if err != nil {
		s.logger.Error("failed to list linked projects", "error", err)
		result.Errors = append(result.Errors, fmt.Sprintf("list error: %v", err))
		return result, nil
	}

	if len(projects) == 0 {
		s.logger.Info("no linked tenders to poll")
		return result, nil
	}

	s.logger.Info("polling linked tenders", "count", len(projects), "workers", s.workers())

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(s.workers())

	for i := range projects {
		project := &projects[i]
		if !project.Linked() {
			continue
		}
		g.Go(func() error {
			changed, err := s.pollProject(ctx, project)

			mu.Lock()
			defer mu.Unlock()
			result.TendersPolled++
			if err != nil {
				s.logger.Error("failed to poll tender",
					"project", project.FacilityName,
					"tender_uuid", *project.ProzorroTenderUUID,
					"error", err,
				)
				result.Errors = append(result.Errors, fmt.Sprintf("poll error (%s): %v", project.FacilityName, err))
				return nil
			}
			if changed {
				result.StatusChanges++
			}
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info("polling completed",
		"polled", result.TendersPolled,
		"changes", result.StatusChanges,
		"errors", len(result.Errors),
		"duration", s.clock.Now().Sub(startTime),
	)

	return result, nil
}

func (s *PollingService) workers() int {
	if s.config.Workers < 1 {
		return 1
	}
	return s.config.Workers
}

// pollProject reports whether the tender status changed.
func (s *PollingService) pollProject(ctx context.Context, project *domain.Project) (bool, error) {
	tender, err := s.tenders.FetchTender(ctx, *project.ProzorroTenderUUID)
	if err != nil {
		return false, fmt.Errorf("fetch tender: %w", err)
	}

	now := s.clock.Now()
	oldStatus := project.Status()

	if tender.Status == oldStatus {
		if err := s.projects.TouchLastSync(ctx, project.ID, now); err != nil {
			return false, fmt.Errorf("touch last sync: %w", err)
		}
		return false, nil
	}

	s.logger.Info("status change",
		"project", project.FacilityName,
		"old_status", oldStatus,
		"new_status", tender.Status,
	)

	displayID := tender.TenderID
	if project.ProzorroTenderID != nil && *project.ProzorroTenderID != "" {
		displayID = *project.ProzorroTenderID
	}
	if displayID == "" {
		displayID = tender.ID
	}

	record := domain.NewStatusChangeRecord(project.ID, domain.StatusChange{
		RecordID:  *project.ProzorroTenderUUID,
		DisplayID: displayID,
		OldStatus: oldStatus,
		NewStatus: tender.Status,
		URL:       domain.TenderURL(displayID),
	})

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.projects.UpdateStatus(txCtx, project.ID, tender.Status, now); err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		if err := s.reviews.Create(txCtx, &record); err != nil {
			return fmt.Errorf("create update record: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	sent, err := s.donors.NotifyDonors(ctx, project, DonorUpdate{
		Title:    record.Title,
		Message:  record.Message,
		TenderID: displayID,
		URL:      record.StatusChange.URL,
	})
	if err != nil {
		s.logger.Warn("donor notification skipped", "project_id", project.ID, "error", err)
	} else {
		s.logger.Debug("donors notified", "project_id", project.ID, "sent", sent)
	}

	return true, nil
}
