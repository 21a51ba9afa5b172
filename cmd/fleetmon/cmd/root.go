// Package cmd provides CLI commands for the fleet monitor.
package cmd

import (
	"io"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version information, injected at build time via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Global flags
var (
	cfgFile  string // Config file path
	logLevel string // Log level
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fleetmon",
	Short: "主机群监控工具 - CPU 利用率巡检与磁盘空间检查",
	Long: `主机群监控工具通过 SSH 依次对每台目标主机采样 CPU 利用率，
计算平均值并与阈值比较，超限主机汇总为一封告警邮件发出。

主要功能:
  - 并发轮询主机群：每台主机固定次数的 CPU 采样 + 一次瞬时负载查询
  - 平均值或瞬时值超过阈值即告警，采集失败同样进入告警批次
  - 告警批次非空时通过 SMTP（可选 Webhook）发送通知
  - 本地磁盘剩余空间检查，低于阈值输出警告`,
	Version: Version,
	// Run displays help when called without any subcommands
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// init initializes the root command and its flags.
func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "配置文件路径")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "日志级别 (debug, info, warn, error)")

	// Customize version template
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// GetConfigFile returns the config file path from command line flag.
func GetConfigFile() string {
	return cfgFile
}

// GetLogLevel returns the log level from command line flag.
func GetLogLevel() string {
	return logLevel
}

// GetVersionInfo returns formatted version information.
func GetVersionInfo() string {
	return Version + "\n" +
		"Build Time: " + BuildTime + "\n" +
		"Git Commit: " + GitCommit + "\n" +
		"Go Version: " + runtime.Version() + "\n" +
		"OS/Arch: " + runtime.GOOS + "/" + runtime.GOARCH
}

// setupLogger creates a zerolog logger with the specified level and format.
func setupLogger(level string, format string) zerolog.Logger {
	// Set log level
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)

	// Select output format based on configuration
	var output io.Writer
	if format == "json" {
		// JSON format - structured logging for log aggregation systems
		output = os.Stderr
	} else {
		// Console format - human-readable output for development
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
			NoColor:    false,
		}
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// resolveLogLevel applies the command line override on top of the config
// file setting.
func resolveLogLevel(configured string) string {
	if GetLogLevel() != "info" { // If explicitly set via command line
		return GetLogLevel()
	}
	if configured != "" {
		return configured
	}
	return "info"
}

// effectiveTimezone returns the timezone used for report timestamps.
func effectiveTimezone() *time.Location {
	tz, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		return time.Local
	}
	return tz
}
