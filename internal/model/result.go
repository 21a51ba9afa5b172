// Package model provides data models for the fleet monitor.
package model

import "time"

// HostResult is the per-target outcome record produced by one polling unit.
// Every dispatched target produces exactly one HostResult, success or
// failure.
type HostResult struct {
	Host        string        `json:"host"`                  // 主机标识
	Average     float64       `json:"average"`               // 平均 CPU 利用率（保留两位小数）
	Instant     int           `json:"instant"`               // 瞬时 CPU 利用率
	Alert       bool          `json:"alert"`                 // 是否触发告警
	Details     string        `json:"details,omitempty"`     // 告警详情文本
	Error       string        `json:"error,omitempty"`       // 采集错误信息
	SampleCount int           `json:"sample_count"`          // 实际采样次数
	CollectedAt time.Time     `json:"collected_at"`          // 采集完成时间
	Duration    time.Duration `json:"duration"`              // 该主机采集耗时
}

// Failed reports whether this result records a collection failure rather
// than a threshold evaluation.
func (r *HostResult) Failed() bool {
	return r.Error != ""
}

// NewFailedHostResult converts a per-host failure into an alerting result so
// the failure is never dropped from the aggregation step.
func NewFailedHostResult(host string, err error, collectedAt time.Time) *HostResult {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return &HostResult{
		Host:        host,
		Alert:       true,
		Details:     "Error: " + msg,
		Error:       msg,
		CollectedAt: collectedAt,
	}
}

// PollSummary provides aggregated statistics about one fleet poll.
type PollSummary struct {
	TotalHosts    int `json:"total_hosts"`    // 主机总数
	HealthyHosts  int `json:"healthy_hosts"`  // 未触发告警的主机数
	AlertingHosts int `json:"alerting_hosts"` // 触发告警的主机数
	FailedHosts   int `json:"failed_hosts"`   // 采集失败的主机数
}

// NewPollSummary creates a summary from host results. Failed hosts are
// counted both as alerting and as failed.
func NewPollSummary(hosts []*HostResult) *PollSummary {
	summary := &PollSummary{}
	for _, host := range hosts {
		if host == nil {
			continue
		}
		summary.TotalHosts++
		if host.Failed() {
			summary.FailedHosts++
		}
		if host.Alert {
			summary.AlertingHosts++
		} else {
			summary.HealthyHosts++
		}
	}
	return summary
}

// PollResult represents the complete result of one fleet poll.
type PollResult struct {
	StartedAt time.Time     `json:"started_at"` // 巡检开始时间
	Duration  time.Duration `json:"duration"`   // 巡检总耗时
	Hosts     []*HostResult `json:"hosts"`      // 主机结果列表（按加入顺序）
	Summary   *PollSummary  `json:"summary"`    // 摘要统计
	Version   string        `json:"version,omitempty"`
}

// NewPollResult creates an empty PollResult with the given start time.
func NewPollResult(startedAt time.Time) *PollResult {
	return &PollResult{
		StartedAt: startedAt,
		Hosts:     make([]*HostResult, 0),
	}
}

// AddHost appends a host result. Order of addition is preserved and carried
// through to the rendered alert body.
func (r *PollResult) AddHost(host *HostResult) {
	if host == nil {
		return
	}
	r.Hosts = append(r.Hosts, host)
}

// Finalize calculates the summary after all hosts have been added.
func (r *PollResult) Finalize(endTime time.Time) {
	r.Duration = endTime.Sub(r.StartedAt)
	r.Summary = NewPollSummary(r.Hosts)
}

// AlertBatch returns the subset of host results with the alert flag set, in
// the order the results were produced.
func (r *PollResult) AlertBatch() []*HostResult {
	var batch []*HostResult
	for _, host := range r.Hosts {
		if host != nil && host.Alert {
			batch = append(batch, host)
		}
	}
	return batch
}

// HasAlerts returns true if any host is in alert state.
func (r *PollResult) HasAlerts() bool {
	for _, host := range r.Hosts {
		if host != nil && host.Alert {
			return true
		}
	}
	return false
}

// GetHost finds a host result by host identifier, or nil if absent.
func (r *PollResult) GetHost(host string) *HostResult {
	for _, hr := range r.Hosts {
		if hr != nil && hr.Host == host {
			return hr
		}
	}
	return nil
}
