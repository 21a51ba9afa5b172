// Package sshx provides the remote execution channel used by the fleet poller.
package sshx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CounterSample is one labeled instance from a remote counter query, e.g.
// per-CPU utilization with an aggregate "all" row.
type CounterSample struct {
	Instance string  `json:"instance"` // 实例标签（如 all、0、1）
	Value    float64 `json:"value"`    // 利用率百分比
}

// ParseCounterOutput parses counter query output. Each non-empty line must
// be an "<instance> <value>" pair; anything else is a parse error so a
// broken remote command surfaces instead of producing silent zeros.
func ParseCounterOutput(output string) ([]CounterSample, error) {
	var samples []CounterSample

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed counter line: %q", line)
		}

		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid counter value in line %q: %w", line, err)
		}

		samples = append(samples, CounterSample{
			Instance: fields[0],
			Value:    value,
		})
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("counter query produced no samples")
	}

	return samples, nil
}

// TotalValue returns the value of the aggregate instance. Matching is
// case-insensitive and accepts the common "_Total" spelling alongside the
// configured name.
func TotalValue(samples []CounterSample, instance string) (float64, error) {
	want := strings.ToLower(instance)
	for _, sample := range samples {
		got := strings.ToLower(sample.Instance)
		if got == want || got == "_total" || got == "total" {
			return sample.Value, nil
		}
	}
	return 0, fmt.Errorf("aggregate instance %q not found in counter output", instance)
}

// ParseInstantOutput parses the instantaneous load query output: a single
// percentage on the last non-empty line, rounded to an integer.
func ParseInstantOutput(output string) (int, error) {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	last := ""
	for i := len(lines) - 1; i >= 0; i-- {
		if trimmed := strings.TrimSpace(lines[i]); trimmed != "" {
			last = trimmed
			break
		}
	}
	if last == "" {
		return 0, fmt.Errorf("instant load query produced no output")
	}

	value, err := strconv.ParseFloat(last, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid instant load value %q: %w", last, err)
	}

	return int(math.Round(value)), nil
}
