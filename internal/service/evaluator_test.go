package service

import (
	"testing"

	"github.com/rs/zerolog"

	"fleetmon/internal/config"
)

func newTestEvaluator(threshold float64) *Evaluator {
	return NewEvaluator(&config.ThresholdConfig{CPU: threshold}, zerolog.Nop())
}

func TestEvaluator_Evaluate(t *testing.T) {
	tests := []struct {
		name      string
		threshold float64
		average   float64
		instant   int
		wantAlert bool
	}{
		{"both below", 80, 45, 50, false},
		{"average above", 80, 85, 60, true},
		{"instant above", 80, 45, 95, true},
		{"both above", 80, 90, 95, true},
		{"average exactly at threshold", 80, 80, 50, false},
		{"instant exactly at threshold", 80, 45, 80, false},
		{"both exactly at threshold", 80, 80, 80, false},
		{"fractionally above", 80, 80.01, 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evaluator := newTestEvaluator(tt.threshold)
			result := evaluator.Evaluate("web-01", tt.average, tt.instant)

			if result.Alert != tt.wantAlert {
				t.Errorf("Alert = %v, want %v (avg=%v instant=%d threshold=%v)",
					result.Alert, tt.wantAlert, tt.average, tt.instant, tt.threshold)
			}
			if !tt.wantAlert && result.Details != "" {
				t.Errorf("non-alerting result must have empty details, got %q", result.Details)
			}
		})
	}
}

func TestEvaluator_Details(t *testing.T) {
	evaluator := newTestEvaluator(80)

	result := evaluator.Evaluate("web-02", 85, 60)
	if result.Details != "Average CPU: 85% | Instant CPU: 60%" {
		t.Errorf("unexpected details: %q", result.Details)
	}

	result = evaluator.Evaluate("web-03", 92.334, 81)
	if result.Details != "Average CPU: 92.33% | Instant CPU: 81%" {
		t.Errorf("unexpected details: %q", result.Details)
	}
}
