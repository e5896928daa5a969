package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/juju/clock"

	"procurement_sync/internal/domain"
)

// alertTimeout bounds the failure alert, which outlives the run context.
const alertTimeout = 30 * time.Second

type Discoverer interface {
	Discover(ctx context.Context) (*domain.DiscoveryResult, error)
}

type Poller interface {
	Poll(ctx context.Context) (*domain.PollResult, error)
}

// Runner performs the daily sync: discovery first, then polling.
type Runner struct {
	discovery Discoverer
	polling   Poller
	notifier  Notifier
	clock     clock.Clock
	logger    *slog.Logger
}

func NewRunner(discovery Discoverer, polling Poller, notifier Notifier, clk clock.Clock, logger *slog.Logger) *Runner {
	return &Runner{
		discovery: discovery,
		polling:   polling,
		notifier:  notifier,
		clock:     clk,
		logger:    logger.With("component", "runner"),
	}
}

// Run always attempts both phases. The returned error is the discovery
// checkpoint failure, if any; the admin is alerted about it.
func (r *Runner) Run(ctx context.Context) (*domain.SyncReport, error) {
	report := &domain.SyncReport{
		RunID:     uuid.NewString(),
		StartedAt: r.clock.Now(),
	}
	logger := r.logger.With("run_id", report.RunID)
	logger.Info("sync started")

	discovery, discoveryErr := r.discovery.Discover(ctx)
	report.Discovery = discovery

	polling, pollErr := r.polling.Poll(ctx)
	report.Polling = polling

	report.Duration = r.clock.Now().Sub(report.StartedAt)

	runErr := discoveryErr
	if runErr == nil {
		runErr = pollErr
	}

	if runErr != nil {
		logger.Error("sync failed", "error", runErr, "duration", report.Duration)
		alert := domain.SyncFailureNotice{
			Error:      runErr.Error(),
			OccurredAt: report.StartedAt,
			Duration:   report.Duration,
			RunID:      report.RunID,
		}
		alertCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), alertTimeout)
		defer cancel()
		if err := r.notifier.SendSyncFailureNotice(alertCtx, alert); err != nil {
			logger.Warn("failed to alert admin", "error", err)
		}
		return report, runErr
	}

	attrs := []any{"errors", report.ErrorCount(), "duration", report.Duration}
	if discovery != nil {
		attrs = append(attrs, "matches", discovery.MatchesFound)
	}
	if polling != nil {
		attrs = append(attrs, "polled", polling.TendersPolled, "changes", polling.StatusChanges)
	}
	logger.Info("sync completed", attrs...)

	return report, nil
}
