// Package config provides configuration management for the fleet monitor.
package config

import (
	"os"
	"testing"
)

// writeTempTargets writes content to a temp YAML file and returns its path.
func writeTempTargets(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp("", "targets-*.yaml")
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

func TestLoadTargets_Success(t *testing.T) {
	path := writeTempTargets(t, `
targets:
  - host: web-01.example.com
  - host: web-02.example.com
    port: 2222
    user: deploy
    labels:
      role: frontend
`)

	targets, err := LoadTargets(path)
	if err != nil {
		t.Fatalf("LoadTargets() error = %v", err)
	}

	if len(targets) != 2 {
		t.Fatalf("expected 2 targets, got %d", len(targets))
	}
	if targets[0].Host != "web-01.example.com" {
		t.Errorf("unexpected first host: %s", targets[0].Host)
	}
	if targets[1].Port != 2222 || targets[1].User != "deploy" {
		t.Errorf("per-target overrides not parsed: %+v", targets[1])
	}
	if targets[1].Labels["role"] != "frontend" {
		t.Errorf("labels not parsed: %+v", targets[1].Labels)
	}
}

func TestLoadTargets_Empty(t *testing.T) {
	path := writeTempTargets(t, "targets: []\n")
	if _, err := LoadTargets(path); err == nil {
		t.Error("expected error for empty target list")
	}
}

func TestLoadTargets_MissingHost(t *testing.T) {
	path := writeTempTargets(t, `
targets:
  - user: deploy
`)
	if _, err := LoadTargets(path); err == nil {
		t.Error("expected error for target without host")
	}
}

func TestLoadTargets_DuplicateHost(t *testing.T) {
	path := writeTempTargets(t, `
targets:
  - host: web-01
  - host: web-01
`)
	if _, err := LoadTargets(path); err == nil {
		t.Error("expected error for duplicate host")
	}
}

func TestLoadTargets_FileNotFound(t *testing.T) {
	if _, err := LoadTargets("/nonexistent/targets.yaml"); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestTarget_AddrAndUsername(t *testing.T) {
	ssh := &SSHConfig{User: "ops", Port: 22}

	target := &Target{Host: "web-01"}
	if got := target.Addr(ssh); got != "web-01:22" {
		t.Errorf("Addr() = %q, want web-01:22", got)
	}
	if got := target.Username(ssh); got != "ops" {
		t.Errorf("Username() = %q, want ops", got)
	}

	target = &Target{Host: "web-02", Port: 2222, User: "deploy"}
	if got := target.Addr(ssh); got != "web-02:2222" {
		t.Errorf("Addr() = %q, want web-02:2222", got)
	}
	if got := target.Username(ssh); got != "deploy" {
		t.Errorf("Username() = %q, want deploy", got)
	}
}
