// Package cmd implements CLI commands for the fleet monitor.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fleetmon/internal/config"
	"fleetmon/internal/report/text"
	"fleetmon/internal/service"
)

// Command flags
var (
	diskPath   string // Volume path to check
	jsonOutput bool   // Emit the status as JSON
)

// diskCmd represents the disk command.
var diskCmd = &cobra.Command{
	Use:   "disk",
	Short: "检查本地磁盘剩余空间",
	Long: `查询指定卷的剩余空间百分比并与阈值比较。
剩余百分比低于阈值时输出警告并返回非零退出码；
恰好等于阈值视为安全。

示例:
  # 检查配置中指定的卷
  fleetmon disk -c config.yaml

  # 检查指定卷
  fleetmon disk -c config.yaml --path /data

  # JSON 输出
  fleetmon disk -c config.yaml --json`,
	Run: runDisk,
}

func init() {
	rootCmd.AddCommand(diskCmd)

	// Define command-specific flags
	diskCmd.Flags().StringVar(&diskPath, "path", "", "要检查的卷路径（默认使用配置中的 disk.path）")
	diskCmd.Flags().BoolVar(&jsonOutput, "json", false, "以 JSON 格式输出检查结果")
}

// runDisk executes the local disk check.
func runDisk(cmd *cobra.Command, args []string) {
	// Step 1: Load configuration
	configPath := GetConfigFile()
	cfg, err := config.Load(configPath)
	if err != nil {
		tmpLogger := setupLogger("error", "console")
		tmpLogger.Error().Err(err).Str("path", configPath).Msg("failed to load config")
		fmt.Fprintf(os.Stderr, "❌ 加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// Step 2: Initialize logger with configuration
	logger := setupLogger(resolveLogLevel(cfg.Logging.Level), cfg.Logging.Format)

	if diskPath == "" {
		diskPath = cfg.Disk.Path
	}

	// Step 3: Run the check. A query failure is fatal; there is no result to
	// evaluate.
	checker := service.NewDiskChecker(&cfg.Threshold, logger)
	status, err := checker.Check(context.Background(), diskPath)
	if err != nil {
		logger.Error().Err(err).Str("path", diskPath).Msg("disk check failed")
		fmt.Fprintf(os.Stderr, "❌ 磁盘检查失败: %v\n", err)
		os.Exit(1)
	}

	// Step 4: Emit the status
	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(status); err != nil {
			fmt.Fprintf(os.Stderr, "❌ JSON 输出失败: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Println(text.RenderDiskStatus(status))
	}

	if status.Warn {
		os.Exit(1)
	}
}
