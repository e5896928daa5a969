package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/juju/clock"

	"procurement_sync/internal/domain"
)

// Runner performs one full sync.
type Runner interface {
	Run(ctx context.Context) (*domain.SyncReport, error)
}

// Observer receives every finished run, successful or not.
type Observer func(report *domain.SyncReport, err error)

type Scheduler struct {
	runner     Runner
	clock      clock.Clock
	interval   time.Duration
	runTimeout time.Duration
	observers  []Observer
	logger     *slog.Logger
}

func NewScheduler(runner Runner, clk clock.Clock, interval, runTimeout time.Duration, logger *slog.Logger, observers ...Observer) *Scheduler {
	return &Scheduler{
		runner:     runner,
		clock:      clk,
		interval:   interval,
		runTimeout: runTimeout,
		observers:  observers,
		logger:     logger.With("component", "scheduler"),
	}
}

// Start runs immediately and then once per interval until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "run_timeout", s.runTimeout)

	_, _ = s.RunOnce(ctx)

	timer := s.clock.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-timer.Chan():
			_, _ = s.RunOnce(ctx)
			timer.Reset(s.interval)
		}
	}
}

// RunOnce performs a single bounded run and hands the outcome to observers.
func (s *Scheduler) RunOnce(ctx context.Context) (*domain.SyncReport, error) {
	runCtx := ctx
	if s.runTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.runTimeout)
		defer cancel()
	}

	report, err := s.runner.Run(runCtx)
	if err != nil {
		s.logger.Error("sync failed", "error", err)
	}

	for _, observe := range s.observers {
		observe(report, err)
	}
	return report, err
}
