package telemetry

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Summary
	}{
		{"empty slice", []float64{}, Summary{}},
		{"single element", []float64{5}, Summary{N: 1, Mean: 5, Min: 5, Max: 5, P10: 5, P50: 5, P90: 5}},
		{"odd count", []float64{3, 1, 5, 2, 4}, Summary{N: 5, Mean: 3, Std: math.Sqrt2, Min: 1, Max: 5, P10: 1, P50: 3, P90: 5}},
		{"ten values", []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, Summary{N: 10, Mean: 5.5, Std: math.Sqrt(8.25), Min: 1, Max: 10, P10: 1, P50: 5, P90: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.values)
			if got.N != tt.want.N {
				t.Fatalf("N = %d, want %d", got.N, tt.want.N)
			}
			check := func(field string, got, want float64) {
				if math.Abs(got-want) > 1e-9 {
					t.Errorf("%s = %v, want %v", field, got, want)
				}
			}
			check("Mean", got.Mean, tt.want.Mean)
			check("Std", got.Std, tt.want.Std)
			check("Min", got.Min, tt.want.Min)
			check("Max", got.Max, tt.want.Max)
			check("P10", got.P10, tt.want.P10)
			check("P50", got.P50, tt.want.P50)
			check("P90", got.P90, tt.want.P90)
		})
	}
}

func TestSummarizeLeavesInputUnsorted(t *testing.T) {
	values := []float64{3, 1, 2}
	Summarize(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered to %v", values)
	}
}
