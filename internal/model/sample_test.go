package model

import "testing"

func TestSampleSeries_Append(t *testing.T) {
	series := NewSampleSeries("web-01", 3)

	series.Append(10.5)
	series.Append(20.5)
	series.Append(30.0)

	if series.Count() != 3 {
		t.Fatalf("expected 3 samples, got %d", series.Count())
	}

	for i, sample := range series.Samples {
		if sample.Seq != i {
			t.Errorf("sample %d: expected seq %d, got %d", i, i, sample.Seq)
		}
		if sample.Host != "web-01" {
			t.Errorf("sample %d: expected host web-01, got %s", i, sample.Host)
		}
	}
}

func TestSampleSeries_Average(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"single sample", []float64{42.0}, 42.0},
		{"exact mean", []float64{10, 20, 30}, 20.0},
		{"rounded to two decimals", []float64{10, 20, 21}, 17.0},
		{"repeating decimal", []float64{1, 1, 2}, 1.33},
		{"thirds round down", []float64{85.5, 85.2, 85.3}, 85.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := NewSampleSeries("host", len(tt.values))
			for _, v := range tt.values {
				series.Append(v)
			}
			if got := series.Average(); got != tt.want {
				t.Errorf("Average() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSampleSeries_AverageEmpty(t *testing.T) {
	series := NewSampleSeries("host", 0)
	if got := series.Average(); got != 0 {
		t.Errorf("expected 0 for empty series, got %v", got)
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(85.456); got != 85.46 {
		t.Errorf("Round2(85.456) = %v, want 85.46", got)
	}
	if got := Round2(85.0); got != 85.0 {
		t.Errorf("Round2(85.0) = %v, want 85.0", got)
	}
}
