// Package cmd provides CLI commands for the fleet monitor.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "显示 fleetmon 版本信息",
	Long: `显示 fleetmon 的版本号、构建时间、Git 提交哈希、Go 版本和运行平台信息。
版本号同时记录在巡检结果与 Excel 报告中，便于核对告警来自哪个构建。`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fleetmon %s\n", GetVersionInfo())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
