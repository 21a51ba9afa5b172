// Package service provides business logic services for the fleet monitor.
package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v4/disk"

	"fleetmon/internal/config"
	"fleetmon/internal/model"
)

// DiskChecker checks local disk free space against the configured threshold.
type DiskChecker struct {
	threshold float64
	logger    zerolog.Logger
}

// NewDiskChecker creates a DiskChecker for the configured free-space cutoff.
func NewDiskChecker(thresholds *config.ThresholdConfig, logger zerolog.Logger) *DiskChecker {
	return &DiskChecker{
		threshold: thresholds.DiskFree,
		logger:    logger.With().Str("component", "disk-checker").Logger(),
	}
}

// Check queries the volume at path and evaluates its free percentage. The
// comparison is strict: the status warns only when the free percentage is
// below the threshold, so a volume exactly at the threshold is safe.
func (c *DiskChecker) Check(ctx context.Context, path string) (*model.DiskStatus, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to query volume %s: %w", path, err)
	}
	if usage.Total == 0 {
		return nil, fmt.Errorf("volume %s reports zero capacity", path)
	}

	status := c.evaluate(path, usage.Free, usage.Total)

	c.logger.Debug().
		Str("path", path).
		Uint64("free", status.Free).
		Uint64("total", status.Total).
		Float64("free_percent", status.FreePercent).
		Bool("warn", status.Warn).
		Msg("disk check completed")

	return status, nil
}

// evaluate computes the free percentage and applies the threshold. Split out
// so the comparison is testable without a real volume.
func (c *DiskChecker) evaluate(path string, free, total uint64) *model.DiskStatus {
	freePercent := model.Round2(float64(free) / float64(total) * 100)
	return &model.DiskStatus{
		Path:        path,
		Total:       total,
		Free:        free,
		FreePercent: freePercent,
		Threshold:   c.threshold,
		Warn:        freePercent < c.threshold,
	}
}
