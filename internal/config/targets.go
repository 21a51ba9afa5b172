// Package config provides configuration management for the fleet monitor.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Target is one remote host to poll. Port and User override the shared SSH
// configuration when set.
type Target struct {
	Host   string            `yaml:"host" json:"host"`
	Port   int               `yaml:"port,omitempty" json:"port,omitempty"`
	User   string            `yaml:"user,omitempty" json:"user,omitempty"`
	Labels map[string]string `yaml:"labels,omitempty" json:"labels,omitempty"`
}

// Addr returns the dial address for this target, falling back to the shared
// SSH port.
func (t *Target) Addr(ssh *SSHConfig) string {
	port := t.Port
	if port == 0 && ssh != nil {
		port = ssh.Port
	}
	if port == 0 {
		port = 22
	}
	return fmt.Sprintf("%s:%d", t.Host, port)
}

// Username returns the login user for this target, falling back to the
// shared SSH user.
func (t *Target) Username(ssh *SSHConfig) string {
	if t.User != "" {
		return t.User
	}
	if ssh != nil {
		return ssh.User
	}
	return ""
}

// TargetsFile represents the root structure of the targets YAML file.
type TargetsFile struct {
	Targets []*Target `yaml:"targets"`
}

// LoadTargets reads the target list from the specified YAML file.
func LoadTargets(targetsPath string) ([]*Target, error) {
	if targetsPath == "" {
		return nil, fmt.Errorf("targets file path is required")
	}

	if _, err := os.Stat(targetsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("targets file not found: %s", targetsPath)
	}

	data, err := os.ReadFile(targetsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read targets file: %w", err)
	}

	var file TargetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse targets file: %w", err)
	}

	if len(file.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in file: %s", targetsPath)
	}

	seen := make(map[string]struct{}, len(file.Targets))
	for i, target := range file.Targets {
		if target == nil || target.Host == "" {
			return nil, fmt.Errorf("target at index %d has no host", i)
		}
		if _, dup := seen[target.Host]; dup {
			return nil, fmt.Errorf("duplicate target host: %s", target.Host)
		}
		seen[target.Host] = struct{}{}
	}

	return file.Targets, nil
}
