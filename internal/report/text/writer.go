// Package text renders poll results and disk statuses as plain text. The
// alert body rendering is kept separate from aggregation so the mail content
// is testable without a relay.
package text

import (
	"fmt"
	"strconv"
	"strings"

	"fleetmon/internal/model"
)

// RenderAlertBody composes the alert mail body: one line per alerting host,
// "<host>: <details>", in the order the results were produced. Rendering is
// deterministic for a fixed batch.
func RenderAlertBody(batch []*model.HostResult) string {
	var sb strings.Builder
	for _, host := range batch {
		if host == nil {
			continue
		}
		sb.WriteString(host.Host)
		sb.WriteString(": ")
		sb.WriteString(host.Details)
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderSummary renders the console summary block printed after a poll.
func RenderSummary(result *model.PollResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Hosts polled:   %d\n", result.Summary.TotalHosts))
	sb.WriteString(fmt.Sprintf("Healthy hosts:  %d\n", result.Summary.HealthyHosts))
	sb.WriteString(fmt.Sprintf("Alerting hosts: %d\n", result.Summary.AlertingHosts))
	sb.WriteString(fmt.Sprintf("Failed hosts:   %d\n", result.Summary.FailedHosts))
	sb.WriteString(fmt.Sprintf("Duration:       %.1fs\n", result.Duration.Seconds()))
	return sb.String()
}

// RenderHostLine renders the per-host progress line printed as results come
// in. Failures appear inline without aborting the run.
func RenderHostLine(host *model.HostResult) string {
	if host.Failed() {
		return fmt.Sprintf("%s: Error encountered: %s", host.Host, host.Error)
	}
	return fmt.Sprintf("%s: average %s, instant %d%%", host.Host, percent(host.Average), host.Instant)
}

// RenderDiskStatus renders the disk check status line: a warning carrying
// the free percentage when below threshold, otherwise an informational line
// with free and total space.
func RenderDiskStatus(status *model.DiskStatus) string {
	if status.Warn {
		return fmt.Sprintf("WARNING: free disk space on %s is %s, below the %s threshold",
			status.Path, percent(status.FreePercent), percent(status.Threshold))
	}
	return fmt.Sprintf("OK: %s free of %s on %s (%s)",
		model.FormatBytes(status.Free), model.FormatBytes(status.Total),
		status.Path, percent(status.FreePercent))
}

// percent renders a percentage without trailing zeros (8 -> "8%").
func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
