// Package config provides configuration management for the fleet monitor.
package config

import "time"

// Config is the root configuration structure for the fleet monitor.
type Config struct {
	Poll      PollConfig      `mapstructure:"poll"`
	Threshold ThresholdConfig `mapstructure:"threshold"`
	Disk      DiskConfig      `mapstructure:"disk"`
	SSH       SSHConfig       `mapstructure:"ssh"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
	Webhook   WebhookConfig   `mapstructure:"webhook"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// PollConfig contains configuration for the fleet polling behavior.
type PollConfig struct {
	SampleCount    int           `mapstructure:"sample_count" validate:"gte=1"`
	SampleInterval time.Duration `mapstructure:"sample_interval" validate:"gte=0"`
	Concurrency    int           `mapstructure:"concurrency" validate:"gte=1,lte=100"`
	// HostTimeout bounds one host's complete polling unit. Zero means the
	// natural sample budget (sample_count × sample_interval) plus a grace
	// period.
	HostTimeout time.Duration `mapstructure:"host_timeout" validate:"gte=0"`
	TargetsFile string        `mapstructure:"targets_file"`
}

// SampleBudget returns the effective per-host deadline.
func (p *PollConfig) SampleBudget() time.Duration {
	if p.HostTimeout > 0 {
		return p.HostTimeout
	}
	return time.Duration(p.SampleCount)*p.SampleInterval + 30*time.Second
}

// ThresholdConfig contains the alert cutoffs.
type ThresholdConfig struct {
	// CPU is the fleet alert cutoff. Comparison is strict: a host alerts
	// only when its average or instantaneous utilization exceeds this value.
	CPU float64 `mapstructure:"cpu" validate:"gte=0,lte=100"`
	// DiskFree is the local disk warning cutoff. Comparison is strict: the
	// checker warns only when the free percentage is below this value, so a
	// volume exactly at the threshold is reported safe.
	DiskFree float64 `mapstructure:"disk_free" validate:"gte=0,lte=100"`
}

// DiskConfig contains configuration for the local disk check.
type DiskConfig struct {
	Path string `mapstructure:"path"`
}

// SSHConfig contains the shared remote-execution credential and query
// commands. The credential is read-only and shared by all polling units;
// per-target overrides come from the targets file.
type SSHConfig struct {
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	KeyFile        string        `mapstructure:"key_file"`
	Port           int           `mapstructure:"port" validate:"gte=1,lte=65535"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	// SampleCommand must print one "<instance> <value>" pair per line, with
	// one line carrying the aggregate instance named by TotalInstance.
	SampleCommand string `mapstructure:"sample_command"`
	// InstantCommand must print a single integer utilization percentage.
	InstantCommand string `mapstructure:"instant_command"`
	TotalInstance  string `mapstructure:"total_instance"`
}

// SMTPConfig contains the mail-submission parameters.
type SMTPConfig struct {
	Server   string `mapstructure:"server"`
	Port     int    `mapstructure:"port" validate:"gte=1,lte=65535"`
	From     string `mapstructure:"from" validate:"omitempty,email"`
	To       string `mapstructure:"to" validate:"omitempty,email"`
	Subject  string `mapstructure:"subject"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// Configured reports whether a mail relay has been set up.
func (s *SMTPConfig) Configured() bool {
	return s.Server != ""
}

// WebhookConfig contains the optional webhook notification channel.
type WebhookConfig struct {
	URL     string        `mapstructure:"url" validate:"omitempty,url"`
	Timeout time.Duration `mapstructure:"timeout"`
	Retry   RetryConfig   `mapstructure:"retry"`
}

// Configured reports whether the webhook channel has been set up.
func (w *WebhookConfig) Configured() bool {
	return w.URL != ""
}

// RetryConfig defines retry behavior for webhook submissions.
type RetryConfig struct {
	MaxRetries int           `mapstructure:"max_retries" validate:"gte=0,lte=10"`
	BaseDelay  time.Duration `mapstructure:"base_delay"`
}

// LoggingConfig contains configuration for logging.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}
