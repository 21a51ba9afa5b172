// Package cmd implements CLI commands for the fleet monitor.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fleetmon/internal/config"
)

// Command flags
var validateTargets string // Optional targets file to validate alongside

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "验证配置文件",
	Long:  "加载并验证配置文件，检查格式、必填字段、数值范围和业务逻辑约束。可同时验证目标主机列表。",
	Run:   runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateTargets, "targets", "t", "", "同时验证的目标主机列表文件路径")
}

// runValidate executes the validate command logic.
func runValidate(cmd *cobra.Command, args []string) {
	configPath := GetConfigFile()

	// Load and validate configuration (Load internally calls Validate)
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 配置验证失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ 配置文件验证通过: %s\n", configPath)

	targetsFile := validateTargets
	if targetsFile == "" {
		targetsFile = cfg.Poll.TargetsFile
	}
	if targetsFile != "" {
		targets, err := config.LoadTargets(targetsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ 目标主机列表验证失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✅ 目标主机列表验证通过: %s (%d 台主机)\n", targetsFile, len(targets))
	}
}
