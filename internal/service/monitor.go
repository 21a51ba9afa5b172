// Package service provides business logic services for the fleet monitor.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"fleetmon/internal/config"
	"fleetmon/internal/model"
)

// Session is an open remote-execution channel to one host, reused for every
// query the monitor issues against that host.
type Session interface {
	// TotalCPU returns the aggregate CPU utilization percentage.
	TotalCPU(ctx context.Context) (float64, error)
	// InstantLoad returns one instantaneous load percentage.
	InstantLoad(ctx context.Context) (int, error)
	Close() error
}

// Dialer opens Sessions to remote targets.
type Dialer interface {
	Dial(ctx context.Context, target *config.Target) (Session, error)
}

// DialerFunc adapts a function to the Dialer interface.
type DialerFunc func(ctx context.Context, target *config.Target) (Session, error)

// Dial implements Dialer.
func (f DialerFunc) Dial(ctx context.Context, target *config.Target) (Session, error) {
	return f(ctx, target)
}

// Monitor polls a single host: it opens one channel, takes a fixed number of
// CPU samples on a fixed interval, averages them, and takes one
// instantaneous load reading.
type Monitor struct {
	cfg       *config.PollConfig
	dialer    Dialer
	evaluator *Evaluator
	logger    zerolog.Logger
}

// NewMonitor creates a Monitor with the given dependencies.
func NewMonitor(cfg *config.PollConfig, dialer Dialer, evaluator *Evaluator, logger zerolog.Logger) *Monitor {
	return &Monitor{
		cfg:       cfg,
		dialer:    dialer,
		evaluator: evaluator,
		logger:    logger.With().Str("component", "monitor").Logger(),
	}
}

// MonitorHost runs the complete polling unit for one target. It always
// returns exactly one HostResult: a failure anywhere in the unit is
// converted into an alerting result carrying the error message, never
// propagated to sibling units.
func (m *Monitor) MonitorHost(ctx context.Context, target *config.Target) *model.HostResult {
	started := time.Now()
	logger := m.logger.With().Str("host", target.Host).Logger()

	average, instant, sampled, err := m.collect(ctx, target, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("host polling failed")
		result := model.NewFailedHostResult(target.Host, err, time.Now())
		result.SampleCount = sampled
		result.Duration = time.Since(started)
		return result
	}

	result := m.evaluator.Evaluate(target.Host, average, instant)
	result.SampleCount = sampled
	result.CollectedAt = time.Now()
	result.Duration = time.Since(started)

	logger.Info().
		Float64("average", result.Average).
		Int("instant", result.Instant).
		Bool("alert", result.Alert).
		Int("samples", result.SampleCount).
		Dur("duration", result.Duration).
		Msg("host polling completed")

	return result
}

// collect opens the channel, runs the sample loop and the instantaneous
// query, and guarantees the channel is closed on every exit path.
func (m *Monitor) collect(ctx context.Context, target *config.Target, logger zerolog.Logger) (average float64, instant int, sampled int, err error) {
	session, err := m.dialer.Dial(ctx, target)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to open channel: %w", err)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			logger.Debug().Err(closeErr).Msg("channel close failed")
		}
	}()

	series := model.NewSampleSeries(target.Host, m.cfg.SampleCount)

	for i := 0; i < m.cfg.SampleCount; i++ {
		value, err := session.TotalCPU(ctx)
		if err != nil {
			return 0, 0, series.Count(), fmt.Errorf("sample %d failed: %w", i+1, err)
		}
		series.Append(value)

		logger.Debug().Int("seq", i).Float64("value", value).Msg("sample taken")

		// No pause after the final sample.
		if i < m.cfg.SampleCount-1 {
			if err := sleepContext(ctx, m.cfg.SampleInterval); err != nil {
				return 0, 0, series.Count(), err
			}
		}
	}

	instant, err = session.InstantLoad(ctx)
	if err != nil {
		return 0, 0, series.Count(), fmt.Errorf("instant load query failed: %w", err)
	}

	return series.Average(), instant, series.Count(), nil
}

// sleepContext pauses for the interval unless the context is canceled first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
