package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/juju/clock"
	_ "github.com/lib/pq"

	"procurement_sync/internal/config"
	"procurement_sync/internal/domain"
	"procurement_sync/internal/mailer"
	"procurement_sync/internal/metrics"
	"procurement_sync/internal/publisher"
	"procurement_sync/internal/scheduler"
	"procurement_sync/internal/service"
	"procurement_sync/internal/source/prozorro"
	"procurement_sync/internal/storage/dynamo"
	"procurement_sync/internal/storage/postgres"
)

// app holds the wired services for one process.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	discovery *service.DiscoveryService
	polling   *service.PollingService
	scheduler *scheduler.Scheduler
	closers   []func() error
}

func newApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := setupLogger(cfg.LogLevel)
	a := &app{cfg: cfg, logger: logger}

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	a.closers = append(a.closers, db.Close)
	logger.Info("connected to database")

	notifier, err := a.newNotifier()
	if err != nil {
		a.Close()
		return nil, err
	}

	checkpoints, err := a.newCheckpointStore(ctx, db)
	if err != nil {
		a.Close()
		return nil, err
	}

	projectStore := postgres.NewProjectStore(db)
	donationStore := postgres.NewDonationStore(db)
	reviewStore := postgres.NewReviewStore(db)
	txManager := postgres.NewTransactionManager(db)

	client := prozorro.New(prozorro.Config{
		BaseURL:        cfg.Prozorro.BaseURL,
		Timeout:        cfg.Prozorro.Timeout,
		MaxAttempts:    cfg.Prozorro.Retry.MaxAttempts,
		InitialBackoff: cfg.Prozorro.Retry.InitialBackoff,
		MaxBackoff:     cfg.Prozorro.Retry.MaxBackoff,
	}, logger)

	clk := clock.WallClock
	qualifying := cfg.Funding.QualifyingStatuses

	watchlist := service.NewWatchlistBuilder(projectStore, donationStore, qualifying)
	a.discovery = service.NewDiscoveryService(
		watchlist,
		reviewStore,
		checkpoints,
		client,
		notifier,
		clk,
		logger,
		cfg.Discovery,
	)

	donors := service.NewDonorNotifier(donationStore, notifier, qualifying, logger)
	a.polling = service.NewPollingService(
		projectStore,
		reviewStore,
		client,
		txManager,
		donors,
		clk,
		logger,
		cfg.Polling,
	)

	runner := service.NewRunner(a.discovery, a.polling, notifier, clk, logger)

	collector := metrics.NewCollector()
	pusher := metrics.NewPusher(cfg.Metrics.PushgatewayURL, cfg.Metrics.Job, collector)
	observe := func(report *domain.SyncReport, runErr error) {
		collector.Observe(report, runErr)
		if err := pusher.Push(context.WithoutCancel(ctx)); err != nil {
			logger.Warn("failed to push metrics", "error", err)
		}
	}

	a.scheduler = scheduler.NewScheduler(runner, clk, cfg.Schedule.Interval, cfg.Schedule.RunTimeout, logger, observe)

	return a, nil
}

func (a *app) newNotifier() (service.Notifier, error) {
	cfg := a.cfg
	switch cfg.Notify.Transport {
	case "ses":
		m, err := mailer.NewSES(mailer.Config{
			Region:     cfg.Notify.SES.Region,
			Endpoint:   cfg.Notify.SES.Endpoint,
			From:       cfg.Notify.SES.From,
			AdminEmail: cfg.Notify.AdminEmail,
		}, a.logger)
		if err != nil {
			return nil, fmt.Errorf("create ses mailer: %w", err)
		}
		return m, nil
	default:
		pub, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
			AdminEmail: cfg.Notify.AdminEmail,
		}, clock.WallClock, a.logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pub.Close)
		return pub, nil
	}
}

func (a *app) newCheckpointStore(ctx context.Context, db *sqlx.DB) (service.CheckpointStore, error) {
	cfg := a.cfg.Checkpoint
	switch cfg.Backend {
	case "dynamodb":
		store, err := dynamo.NewCheckpointStore(dynamo.Config{
			Region:    cfg.DynamoDB.Region,
			Endpoint:  cfg.DynamoDB.Endpoint,
			TableName: cfg.DynamoDB.TableName,
		})
		if err != nil {
			return nil, fmt.Errorf("create dynamodb checkpoint store: %w", err)
		}
		// DynamoDB Local starts empty
		if cfg.DynamoDB.Endpoint != "" {
			if err := store.EnsureTable(ctx); err != nil {
				return nil, err
			}
		}
		return store, nil
	default:
		return postgres.NewCheckpointStore(db), nil
	}
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
