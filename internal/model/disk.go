// Package model provides data models for the fleet monitor.
package model

import "fmt"

// DiskStatus is the outcome of one local disk free-space check.
type DiskStatus struct {
	Path        string  `json:"path"`         // 挂载点路径
	Total       uint64  `json:"total"`        // 总容量（bytes）
	Free        uint64  `json:"free"`         // 可用空间（bytes）
	FreePercent float64 `json:"free_percent"` // 可用空间百分比（保留两位小数）
	Threshold   float64 `json:"threshold"`    // 告警阈值（百分比）
	Warn        bool    `json:"warn"`         // 低于阈值时为 true
}

// FormatBytes formats a byte count to a human-readable size.
func FormatBytes(bytes uint64) string {
	const (
		KB = 1 << 10
		MB = KB << 10
		GB = MB << 10
		TB = GB << 10
	)

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.2f TB", float64(bytes)/float64(TB))
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
