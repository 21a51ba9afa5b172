// Package config provides configuration management for the fleet monitor.
package config

import (
	"os"
	"testing"
	"time"
)

// writeTempConfig writes content to a temp YAML file and returns its path.
func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	if _, err := tmpFile.WriteString(content); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	tmpFile.Close()
	return tmpFile.Name()
}

func TestLoad_Success(t *testing.T) {
	path := writeTempConfig(t, `
threshold:
  cpu: 75
smtp:
  server: "mail.example.com"
  from: "monitor@example.com"
  to: "ops@example.com"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Verify file values
	if cfg.Threshold.CPU != 75 {
		t.Errorf("Threshold.CPU = %v, want 75", cfg.Threshold.CPU)
	}
	if cfg.SMTP.Server != "mail.example.com" {
		t.Errorf("SMTP.Server = %v, want mail.example.com", cfg.SMTP.Server)
	}

	// Verify defaults
	if cfg.Poll.SampleCount != 60 {
		t.Errorf("SampleCount = %v, want 60", cfg.Poll.SampleCount)
	}
	if cfg.Poll.SampleInterval != 60*time.Second {
		t.Errorf("SampleInterval = %v, want 60s", cfg.Poll.SampleInterval)
	}
	if cfg.Poll.Concurrency != 10 {
		t.Errorf("Concurrency = %v, want 10", cfg.Poll.Concurrency)
	}
	if cfg.Threshold.DiskFree != 10.0 {
		t.Errorf("Threshold.DiskFree = %v, want 10", cfg.Threshold.DiskFree)
	}
	if cfg.SSH.Port != 22 {
		t.Errorf("SSH.Port = %v, want 22", cfg.SSH.Port)
	}
	if cfg.SSH.TotalInstance != "all" {
		t.Errorf("SSH.TotalInstance = %v, want all", cfg.SSH.TotalInstance)
	}
	if cfg.SMTP.Port != 25 {
		t.Errorf("SMTP.Port = %v, want 25", cfg.SMTP.Port)
	}
	if cfg.SMTP.Subject == "" {
		t.Error("SMTP.Subject default should not be empty")
	}
	if cfg.Webhook.Retry.MaxRetries != 3 {
		t.Errorf("Webhook.Retry.MaxRetries = %v, want 3", cfg.Webhook.Retry.MaxRetries)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %v, want info", cfg.Logging.Level)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	if err == nil {
		t.Error("Load() should return error for empty path")
	}
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	path := writeTempConfig(t, `
smtp:
  server: "mail.example.com"
  from: "monitor@example.com"
  to: "ops@example.com"
  password: "file-secret"
`)

	os.Setenv("FLEETMON_SMTP_PASSWORD", "env-secret")
	defer os.Unsetenv("FLEETMON_SMTP_PASSWORD")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SMTP.Password != "env-secret" {
		t.Errorf("SMTP.Password = %v, want env-secret", cfg.SMTP.Password)
	}
}

func TestLoad_InvalidThreshold(t *testing.T) {
	path := writeTempConfig(t, `
threshold:
  cpu: 150
`)

	_, err := Load(path)
	if err == nil {
		t.Error("Load() should reject a threshold above 100")
	}
}

func TestPollConfig_SampleBudget(t *testing.T) {
	p := &PollConfig{SampleCount: 60, SampleInterval: time.Minute}
	if got := p.SampleBudget(); got != 60*time.Minute+30*time.Second {
		t.Errorf("SampleBudget() = %v, want 60m30s", got)
	}

	p.HostTimeout = 5 * time.Minute
	if got := p.SampleBudget(); got != 5*time.Minute {
		t.Errorf("SampleBudget() = %v, want explicit 5m", got)
	}
}
