// Package config provides configuration management for the fleet monitor.
package config

import (
	"strings"
	"testing"
	"time"
)

// validTestConfig returns a configuration that passes all validation.
func validTestConfig() *Config {
	return &Config{
		Poll: PollConfig{
			SampleCount:    60,
			SampleInterval: time.Minute,
			Concurrency:    10,
		},
		Threshold: ThresholdConfig{CPU: 80, DiskFree: 10},
		Disk:      DiskConfig{Path: "/"},
		SSH: SSHConfig{
			User:           "ops",
			KeyFile:        "/home/ops/.ssh/id_ed25519",
			Port:           22,
			ConnectTimeout: 10 * time.Second,
		},
		SMTP: SMTPConfig{
			Server:  "mail.example.com",
			Port:    25,
			From:    "monitor@example.com",
			To:      "ops@example.com",
			Subject: "CPU utilization alert",
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

func TestValidate_Success(t *testing.T) {
	if err := Validate(validTestConfig()); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_SampleCountTooLow(t *testing.T) {
	cfg := validTestConfig()
	cfg.Poll.SampleCount = 0

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for sample_count = 0")
	}
	if !strings.Contains(err.Error(), "poll.samplecount") {
		t.Errorf("error should mention the failing field, got: %v", err)
	}
}

func TestValidate_InvalidEmail(t *testing.T) {
	cfg := validTestConfig()
	cfg.SMTP.From = "not-an-address"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for invalid sender address")
	}
	if !strings.Contains(err.Error(), "invalid email address") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestValidate_SMTPIncomplete(t *testing.T) {
	cfg := validTestConfig()
	cfg.SMTP.To = ""

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for missing recipient")
	}
	if !strings.Contains(err.Error(), "recipient address is required") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestValidate_SMTPNotConfigured(t *testing.T) {
	// An empty SMTP block is fine: the disk command does not need a relay.
	cfg := validTestConfig()
	cfg.SMTP = SMTPConfig{Port: 25}

	if err := Validate(cfg); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_SSHMissingAuth(t *testing.T) {
	cfg := validTestConfig()
	cfg.SSH.Password = ""
	cfg.SSH.KeyFile = ""

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for missing SSH credential")
	}
	if !strings.Contains(err.Error(), "ssh.password or ssh.key_file") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := validTestConfig()
	cfg.Logging.Level = "verbose"

	if err := Validate(cfg); err == nil {
		t.Error("expected validation error for unknown log level")
	}
}

func TestValidate_InvalidWebhookURL(t *testing.T) {
	cfg := validTestConfig()
	cfg.Webhook.URL = "not a url"

	if err := Validate(cfg); err == nil {
		t.Error("expected validation error for malformed webhook URL")
	}
}
