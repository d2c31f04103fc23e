package telemetry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.0},
		{"p95 of twenty", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, 0.95, 19},
		{"p above one clamps", []float64{1, 2, 3}, 1.5, 3.0},
		{"p below zero clamps", []float64{1, 2, 3}, -1, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeSpread(t *testing.T) {
	values := []float64{4, 1, 3, 2, 5}
	mean, p50, p95, max := ComputeSpread(values)

	if math.Abs(mean-3) > 0.001 {
		t.Errorf("mean = %v, want 3", mean)
	}
	if p50 != 3 {
		t.Errorf("p50 = %v, want 3", p50)
	}
	if p95 != 5 {
		t.Errorf("p95 = %v, want 5", p95)
	}
	if max != 5 {
		t.Errorf("max = %v, want 5", max)
	}

	// Input must not be reordered
	if values[0] != 4 {
		t.Error("ComputeSpread sorted its input in place")
	}
}

func TestComputeSpreadEmpty(t *testing.T) {
	mean, p50, p95, max := ComputeSpread(nil)
	if mean != 0 || p50 != 0 || p95 != 0 || max != 0 {
		t.Errorf("expected zeros for empty input, got %v %v %v %v", mean, p50, p95, max)
	}
}

func TestDistances(t *testing.T) {
	a := []r2.Vec{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 1, Y: 1}}
	b := []r2.Vec{{X: 0, Y: 0}, {X: 0, Y: 0}}

	d := Distances(a, b)
	if len(d) != 2 {
		t.Fatalf("len = %d, want common prefix 2", len(d))
	}
	if d[0] != 0 || math.Abs(d[1]-5) > 1e-12 {
		t.Errorf("distances = %v, want [0 5]", d)
	}
}
