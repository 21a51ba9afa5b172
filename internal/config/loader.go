// Package config provides configuration management for the fleet monitor.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Default remote query commands. The sampler prints "<instance> <value>"
// pairs including the aggregate "all" row; the instant query prints one
// integer percentage.
const (
	defaultSampleCommand  = `mpstat -P ALL 1 1 | awk '$1 == "Average:" { print $2, 100 - $NF }'`
	defaultInstantCommand = `vmstat 1 2 | tail -1 | awk '{ print 100 - $15 }'`
)

// Load reads configuration from the specified YAML file and environment
// variables. Environment variables take precedence over file values.
// Environment variable format: FLEETMON_<SECTION>_<KEY>
// (e.g., FLEETMON_SMTP_PASSWORD).
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults first
	setDefaults(v)

	// Configure environment variable binding
	v.SetEnvPrefix("FLEETMON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		return nil, fmt.Errorf("config file path is required")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values for all configuration options.
func setDefaults(v *viper.Viper) {
	// Poll defaults: one sample per minute for an hour
	v.SetDefault("poll.sample_count", 60)
	v.SetDefault("poll.sample_interval", 60*time.Second)
	v.SetDefault("poll.concurrency", 10)
	v.SetDefault("poll.host_timeout", time.Duration(0))
	v.SetDefault("poll.targets_file", "configs/targets.yaml")

	// Threshold defaults
	v.SetDefault("threshold.cpu", 80.0)
	v.SetDefault("threshold.disk_free", 10.0)

	// Disk check defaults
	v.SetDefault("disk.path", "/")

	// SSH defaults
	v.SetDefault("ssh.port", 22)
	v.SetDefault("ssh.connect_timeout", 10*time.Second)
	v.SetDefault("ssh.sample_command", defaultSampleCommand)
	v.SetDefault("ssh.instant_command", defaultInstantCommand)
	v.SetDefault("ssh.total_instance", "all")

	// SMTP defaults
	v.SetDefault("smtp.port", 25)
	v.SetDefault("smtp.subject", "CPU utilization alert")

	// Webhook defaults
	v.SetDefault("webhook.timeout", 10*time.Second)
	v.SetDefault("webhook.retry.max_retries", 3)
	v.SetDefault("webhook.retry.base_delay", 1*time.Second)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
