package text

import (
	"strings"
	"testing"
	"time"

	"fleetmon/internal/model"
)

func TestRenderAlertBody(t *testing.T) {
	batch := []*model.HostResult{
		{Host: "host-b", Alert: true, Details: "Average CPU: 85% | Instant CPU: 60%"},
		{Host: "host-c", Alert: true, Details: "Error: timeout", Error: "timeout"},
	}

	body := RenderAlertBody(batch)

	want := "host-b: Average CPU: 85% | Instant CPU: 60%\nhost-c: Error: timeout\n"
	if body != want {
		t.Errorf("RenderAlertBody() = %q, want %q", body, want)
	}
}

func TestRenderAlertBody_Deterministic(t *testing.T) {
	batch := []*model.HostResult{
		{Host: "a", Alert: true, Details: "Error: x"},
		{Host: "b", Alert: true, Details: "Error: y"},
	}

	first := RenderAlertBody(batch)
	for i := 0; i < 10; i++ {
		if got := RenderAlertBody(batch); got != first {
			t.Fatalf("rendering not deterministic: %q vs %q", got, first)
		}
	}
}

func TestRenderAlertBody_Empty(t *testing.T) {
	if body := RenderAlertBody(nil); body != "" {
		t.Errorf("expected empty body, got %q", body)
	}
}

func TestRenderHostLine(t *testing.T) {
	ok := &model.HostResult{Host: "web-01", Average: 42.5, Instant: 61}
	if got := RenderHostLine(ok); got != "web-01: average 42.5%, instant 61%" {
		t.Errorf("unexpected line: %q", got)
	}

	failed := &model.HostResult{Host: "db-01", Alert: true, Error: "timeout", Details: "Error: timeout"}
	if got := RenderHostLine(failed); got != "db-01: Error encountered: timeout" {
		t.Errorf("unexpected failure line: %q", got)
	}
}

func TestRenderDiskStatus_Warning(t *testing.T) {
	// Free 8% against threshold 10: the warning line must carry the "8".
	status := &model.DiskStatus{
		Path:        "/",
		Total:       100 << 30,
		Free:        8 << 30,
		FreePercent: 8,
		Threshold:   10,
		Warn:        true,
	}

	line := RenderDiskStatus(status)
	if !strings.HasPrefix(line, "WARNING") {
		t.Errorf("expected warning line, got %q", line)
	}
	if !strings.Contains(line, "8%") {
		t.Errorf("warning line must contain the free percentage, got %q", line)
	}
}

func TestRenderDiskStatus_Safe(t *testing.T) {
	status := &model.DiskStatus{
		Path:        "/data",
		Total:       100 << 30,
		Free:        50 << 30,
		FreePercent: 50,
		Threshold:   10,
	}

	line := RenderDiskStatus(status)
	if !strings.HasPrefix(line, "OK") {
		t.Errorf("expected informational line, got %q", line)
	}
	if !strings.Contains(line, "50.00 GB") || !strings.Contains(line, "100.00 GB") {
		t.Errorf("informational line must contain free and total space, got %q", line)
	}
}

func TestRenderSummary(t *testing.T) {
	result := model.NewPollResult(time.Now())
	result.AddHost(&model.HostResult{Host: "a"})
	result.AddHost(&model.HostResult{Host: "b", Alert: true})
	result.Finalize(result.StartedAt.Add(3 * time.Second))

	summary := RenderSummary(result)
	for _, want := range []string{"Hosts polled:   2", "Alerting hosts: 1", "Duration:       3.0s"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}
