// Package model provides data models for the fleet monitor.
package model

import "math"

// Sample represents one CPU utilization reading taken from a host.
type Sample struct {
	Host  string  `json:"host"`  // Source host identifier
	Seq   int     `json:"seq"`   // Zero-based sequence index within the poll
	Value float64 `json:"value"` // Utilization percentage
}

// SampleSeries accumulates the samples taken from a single host during one
// poll. It is owned exclusively by that host's polling unit and is never
// shared across goroutines.
type SampleSeries struct {
	Host    string   `json:"host"`
	Samples []Sample `json:"samples"`
}

// NewSampleSeries creates an empty series for the given host, pre-sized for
// the expected sample count.
func NewSampleSeries(host string, capacity int) *SampleSeries {
	if capacity < 0 {
		capacity = 0
	}
	return &SampleSeries{
		Host:    host,
		Samples: make([]Sample, 0, capacity),
	}
}

// Append records one reading, assigning the next sequence index.
func (s *SampleSeries) Append(value float64) {
	s.Samples = append(s.Samples, Sample{
		Host:  s.Host,
		Seq:   len(s.Samples),
		Value: value,
	})
}

// Count returns the number of recorded samples.
func (s *SampleSeries) Count() int {
	return len(s.Samples)
}

// Average returns the arithmetic mean of all samples rounded to two decimal
// places. It returns 0 for an empty series.
func (s *SampleSeries) Average() float64 {
	if len(s.Samples) == 0 {
		return 0
	}
	var sum float64
	for _, sample := range s.Samples {
		sum += sample.Value
	}
	return Round2(sum / float64(len(s.Samples)))
}

// Round2 rounds a value to two decimal places for reporting.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
