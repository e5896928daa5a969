package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"procurement_sync/internal/domain"
)

const metricsNamespace = "procurement_sync"

// Collector is a prometheus.Collector holding the outcome of the latest sync
// run. Values are gauges because each run is pushed as a whole.
type Collector struct {
	pagesScanned  prometheus.Gauge
	feedItems     prometheus.Gauge
	matchesFound  prometheus.Gauge
	tendersPolled prometheus.Gauge
	statusChanges prometheus.Gauge
	runErrors     *prometheus.GaugeVec
	runDuration   prometheus.Gauge
	lastSuccess   prometheus.Gauge
	lastFailure   prometheus.Gauge
}

func NewCollector() *Collector {
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      name,
			Help:      help,
		})
	}
	return &Collector{
		pagesScanned:  gauge("discovery_pages_scanned", "Feed pages read by the last discovery run."),
		feedItems:     gauge("discovery_feed_items", "Feed items examined by the last discovery run."),
		matchesFound:  gauge("discovery_matches", "New tender matches raised by the last discovery run."),
		tendersPolled: gauge("polling_tenders_polled", "Linked tenders checked by the last polling run."),
		statusChanges: gauge("polling_status_changes", "Status changes recorded by the last polling run."),
		runErrors: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "run_errors",
				Help:      "Non-fatal errors collected by the last run.",
			}, []string{"phase"},
		),
		runDuration: gauge("run_duration_seconds", "Wall time of the last run."),
		lastSuccess: gauge("last_success_timestamp_seconds", "Unix time of the last run without a fatal error."),
		lastFailure: gauge("last_failure_timestamp_seconds", "Unix time of the last run that ended with a fatal error."),
	}
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, g := range c.gauges() {
		g.Describe(ch)
	}
	c.runErrors.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, g := range c.gauges() {
		g.Collect(ch)
	}
	c.runErrors.Collect(ch)
}

func (c *Collector) gauges() []prometheus.Gauge {
	return []prometheus.Gauge{
		c.pagesScanned,
		c.feedItems,
		c.matchesFound,
		c.tendersPolled,
		c.statusChanges,
		c.runDuration,
		c.lastSuccess,
		c.lastFailure,
	}
}

// Observe records report. runErr is the fatal error returned with it, if any.
func (c *Collector) Observe(report *domain.SyncReport, runErr error) {
	if report == nil {
		return
	}
	if d := report.Discovery; d != nil {
		c.pagesScanned.Set(float64(d.PagesScanned))
		c.feedItems.Set(float64(d.FeedItemsProcessed))
		c.matchesFound.Set(float64(d.MatchesFound))
		c.runErrors.WithLabelValues("discovery").Set(float64(len(d.Errors)))
	}
	if p := report.Polling; p != nil {
		c.tendersPolled.Set(float64(p.TendersPolled))
		c.statusChanges.Set(float64(p.StatusChanges))
		c.runErrors.WithLabelValues("polling").Set(float64(len(p.Errors)))
	}
	c.runDuration.Set(report.Duration.Seconds())

	finished := float64(report.StartedAt.Add(report.Duration).Unix())
	if runErr != nil {
		c.lastFailure.Set(finished)
	} else {
		c.lastSuccess.Set(finished)
	}
}

// Pusher sends a registry to a Prometheus Pushgateway.
type Pusher struct {
	pusher *push.Pusher
}

// NewPusher returns nil when url is empty; a nil Pusher does nothing.
func NewPusher(url, job string, collector prometheus.Collector) *Pusher {
	if url == "" {
		return nil
	}
	registry := prometheus.NewRegistry()
	registry.MustRegister(collector)
	return &Pusher{pusher: push.New(url, job).Gatherer(registry)}
}

func (p *Pusher) Push(ctx context.Context) error {
	if p == nil {
		return nil
	}
	if err := p.pusher.PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}
