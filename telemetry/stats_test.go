package telemetry

import (
	"math"
	"testing"
)

func TestComputeDisplacementStats(t *testing.T) {
	values := []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	ds := ComputeDisplacementStats(values)

	if math.Abs(ds.Mean-5.5) > 1e-9 {
		t.Errorf("mean = %v, want 5.5", ds.Mean)
	}
	// Sample standard deviation of 1..10
	if math.Abs(ds.Std-3.02765) > 1e-4 {
		t.Errorf("std = %v, want ~3.02765", ds.Std)
	}
	if ds.P50 != 5 {
		t.Errorf("p50 = %v, want 5", ds.P50)
	}
	if ds.P90 != 9 {
		t.Errorf("p90 = %v, want 9", ds.P90)
	}
	if ds.Max != 10 {
		t.Errorf("max = %v, want 10", ds.Max)
	}
}

func TestComputeDisplacementStatsSmall(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   DisplacementStats
	}{
		{"empty", nil, DisplacementStats{}},
		{"single", []float64{2.5}, DisplacementStats{Mean: 2.5, P50: 2.5, P90: 2.5, Max: 2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeDisplacementStats(tt.values); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
