// Package service provides business logic services for the fleet monitor.
package service

import (
	"strconv"

	"github.com/rs/zerolog"

	"fleetmon/internal/config"
	"fleetmon/internal/model"
)

// Evaluator compares polled CPU values against the alert threshold.
type Evaluator struct {
	threshold float64
	logger    zerolog.Logger
}

// NewEvaluator creates an Evaluator for the configured CPU threshold.
func NewEvaluator(thresholds *config.ThresholdConfig, logger zerolog.Logger) *Evaluator {
	return &Evaluator{
		threshold: thresholds.CPU,
		logger:    logger.With().Str("component", "evaluator").Logger(),
	}
}

// Evaluate builds the HostResult for a successfully polled host. The
// comparison is strict: a host alerts only when the average or the
// instantaneous reading exceeds the threshold, so a value exactly at the
// threshold does not alert.
func (e *Evaluator) Evaluate(host string, average float64, instant int) *model.HostResult {
	result := &model.HostResult{
		Host:    host,
		Average: model.Round2(average),
		Instant: instant,
	}

	if result.Average > e.threshold || float64(result.Instant) > e.threshold {
		result.Alert = true
		result.Details = "Average CPU: " + formatPercent(result.Average) +
			" | Instant CPU: " + strconv.Itoa(result.Instant) + "%"

		e.logger.Debug().
			Str("host", host).
			Float64("average", result.Average).
			Int("instant", result.Instant).
			Float64("threshold", e.threshold).
			Msg("threshold exceeded")
	}

	return result
}

// formatPercent renders a percentage without trailing zeros (85 -> "85%",
// 72.33 -> "72.33%").
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
