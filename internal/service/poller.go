// Package service provides business logic services for the fleet monitor.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"fleetmon/internal/config"
	"fleetmon/internal/model"
)

// Poller orchestrates one fleet poll: every target is polled concurrently,
// each unit under its own deadline, and aggregation starts only after the
// full join.
type Poller struct {
	cfg     *config.PollConfig
	monitor *Monitor
	version string
	logger  zerolog.Logger
}

// PollerOption is a functional option for configuring a Poller.
type PollerOption func(*Poller)

// WithVersion sets the tool version recorded in the poll result.
func WithVersion(version string) PollerOption {
	return func(p *Poller) {
		p.version = version
	}
}

// NewPoller creates a Poller with the given dependencies.
func NewPoller(cfg *config.PollConfig, monitor *Monitor, logger zerolog.Logger, opts ...PollerOption) *Poller {
	p := &Poller{
		cfg:     cfg,
		monitor: monitor,
		version: "dev",
		logger:  logger.With().Str("component", "poller").Logger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Poll runs the per-host monitor for every target and returns the finalized
// result. Exactly one HostResult is produced per target regardless of
// success or failure, and results are appended in completion order.
func (p *Poller) Poll(ctx context.Context, targets []*config.Target) *model.PollResult {
	startTime := time.Now()
	budget := p.cfg.SampleBudget()

	p.logger.Info().
		Int("targets", len(targets)).
		Int("sample_count", p.cfg.SampleCount).
		Dur("sample_interval", p.cfg.SampleInterval).
		Dur("host_budget", budget).
		Msg("starting fleet poll")

	result := model.NewPollResult(startTime)
	result.Version = p.version

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Concurrency)

	var mu sync.Mutex // Protects result from concurrent appends

	for _, target := range targets {
		g.Go(func() error {
			// Per-host deadline: a hung remote call must not block the join
			// indefinitely.
			hostCtx, cancel := context.WithTimeout(ctx, budget)
			defer cancel()

			hostResult := p.monitor.MonitorHost(hostCtx, target)

			mu.Lock()
			result.AddHost(hostResult)
			mu.Unlock()
			return nil
		})
	}

	// Monitor units never return errors; the join itself cannot fail.
	_ = g.Wait()

	result.Finalize(time.Now())

	p.logger.Info().
		Int("total_hosts", result.Summary.TotalHosts).
		Int("healthy_hosts", result.Summary.HealthyHosts).
		Int("alerting_hosts", result.Summary.AlertingHosts).
		Int("failed_hosts", result.Summary.FailedHosts).
		Dur("duration", result.Duration).
		Msg("fleet poll completed")

	return result
}
