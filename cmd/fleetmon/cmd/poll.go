// Package cmd implements CLI commands for the fleet monitor.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fleetmon/internal/client/sshx"
	"fleetmon/internal/config"
	"fleetmon/internal/notify"
	"fleetmon/internal/report"
	"fleetmon/internal/report/excel"
	"fleetmon/internal/report/text"
	"fleetmon/internal/service"
)

// Command flags
var (
	targetsPath string // Path to targets definition file
	excelPath   string // Path for the optional Excel report
	noNotify    bool   // Evaluate only, send nothing
)

// pollCmd represents the poll command.
var pollCmd = &cobra.Command{
	Use:   "poll",
	Short: "执行主机群 CPU 巡检",
	Long: `执行完整的主机群巡检流程，包括：
1. 加载配置与目标主机列表
2. 并发轮询每台主机：固定次数 CPU 采样 + 一次瞬时负载查询
3. 平均值或瞬时值超过阈值即标记告警，采集失败同样进入告警批次
4. 告警批次非空时发送邮件（以及可选的 Webhook）通知
5. 可选生成 Excel 巡检报告

示例:
  # 使用默认配置执行巡检
  fleetmon poll -c config.yaml

  # 使用自定义目标主机列表
  fleetmon poll -c config.yaml -t targets.yaml

  # 生成 Excel 报告
  fleetmon poll -c config.yaml --excel reports/poll.xlsx

  # 仅评估，不发送任何通知
  fleetmon poll -c config.yaml --no-notify`,
	Run: runPoll,
}

func init() {
	rootCmd.AddCommand(pollCmd)

	// Define command-specific flags
	pollCmd.Flags().StringVarP(&targetsPath, "targets", "t", "", "目标主机列表文件路径（默认使用配置中的 poll.targets_file）")
	pollCmd.Flags().StringVar(&excelPath, "excel", "", "Excel 报告输出路径（可选）")
	pollCmd.Flags().BoolVar(&noNotify, "no-notify", false, "仅评估，不发送通知")
}

// runPoll executes the complete fleet polling workflow.
func runPoll(cmd *cobra.Command, args []string) {
	printBanner()

	// Step 1: Load configuration
	configPath := GetConfigFile()
	fmt.Printf("📋 加载配置文件: %s\n", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		tmpLogger := setupLogger("error", "console")
		tmpLogger.Error().Err(err).Str("path", configPath).Msg("failed to load config")
		fmt.Fprintf(os.Stderr, "❌ 加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// Step 2: Initialize logger with configuration
	logger := setupLogger(resolveLogLevel(cfg.Logging.Level), cfg.Logging.Format)
	logger.Debug().
		Str("config_path", configPath).
		Msg("configuration loaded successfully")

	// Step 3: Load target hosts
	if targetsPath == "" {
		targetsPath = cfg.Poll.TargetsFile
	}
	fmt.Printf("🖥️  加载目标主机列表: %s", targetsPath)
	targets, err := config.LoadTargets(targetsPath)
	if err != nil {
		logger.Error().Err(err).Str("path", targetsPath).Msg("failed to load targets")
		fmt.Fprintf(os.Stderr, "\n❌ 加载目标主机列表失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf(" (%d 台主机)\n", len(targets))

	// Step 4: Create SSH dialer and services
	sshDialer, err := sshx.NewDialer(&cfg.SSH, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create SSH dialer")
		fmt.Fprintf(os.Stderr, "❌ 创建 SSH 连接器失败: %v\n", err)
		os.Exit(1)
	}
	dialer := service.DialerFunc(func(ctx context.Context, target *config.Target) (service.Session, error) {
		return sshDialer.Dial(ctx, target)
	})

	evaluator := service.NewEvaluator(&cfg.Threshold, logger)
	monitor := service.NewMonitor(&cfg.Poll, dialer, evaluator, logger)
	poller := service.NewPoller(&cfg.Poll, monitor, logger, service.WithVersion(Version))
	logger.Debug().Msg("polling services initialized")

	// Step 5: Execute the fleet poll
	fmt.Printf("⏳ 开始巡检 (阈值 %.0f%%，每台主机 %d 次采样)...\n",
		cfg.Threshold.CPU, cfg.Poll.SampleCount)

	ctx := context.Background()
	result := poller.Poll(ctx, targets)

	// Step 6: Print per-host results and the summary
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	for _, host := range result.Hosts {
		fmt.Println(text.RenderHostLine(host))
	}
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Print(text.RenderSummary(result))

	// Step 7: Generate the optional report
	if excelPath != "" {
		var writer report.Writer = excel.NewWriter(effectiveTimezone())
		if err := writer.Write(result, excelPath); err != nil {
			logger.Error().Err(err).Str("format", writer.Format()).Str("path", excelPath).Msg("failed to generate report")
			fmt.Fprintf(os.Stderr, "❌ %s 报告生成失败: %v\n", writer.Format(), err)
			os.Exit(1)
		}
		logger.Info().Str("format", writer.Format()).Str("path", excelPath).Msg("report generated successfully")
		fmt.Printf("📄 报告已生成: %s\n", excelPath)
	}

	// Step 8: Dispatch notifications
	if !noNotify {
		var notifiers []notify.Notifier
		if cfg.SMTP.Configured() {
			notifiers = append(notifiers, notify.NewMailer(&cfg.SMTP, logger))
		}
		if cfg.Webhook.Configured() {
			notifiers = append(notifiers, notify.NewWebhook(&cfg.Webhook, logger))
		}

		dispatcher := notify.NewDispatcher(cfg.SMTP.Subject, logger, notifiers...)
		sent, err := dispatcher.Dispatch(ctx, result)
		if err != nil {
			logger.Error().Err(err).Msg("failed to dispatch notifications")
			fmt.Fprintf(os.Stderr, "❌ 通知发送失败: %v\n", err)
			os.Exit(1)
		}
		if sent {
			fmt.Printf("📧 告警通知已发送 (%d 台主机超限)\n", result.Summary.AlertingHosts)
		} else {
			fmt.Println("✅ 所有主机均低于阈值，未发送告警")
		}
	}

	// Exit non-zero when any host is alerting so schedulers can react.
	if result.HasAlerts() {
		os.Exit(1)
	}
}

// printBanner prints the application banner.
func printBanner() {
	fmt.Printf("🔍 主机群监控工具 %s\n", Version)
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
}
