package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated settle statistics for a window of steps.
type WindowStats struct {
	WindowStartStep int64   `csv:"-"`
	WindowEndStep   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Interaction state at window end
	Blend       float64 `csv:"blend"`
	Recovery    float64 `csv:"recovery"`
	Interacting bool    `csv:"interacting"`

	// Motion sampled at window end
	MaxSpeed  float64 `csv:"max_speed"`
	MeanSpeed float64 `csv:"mean_speed"`

	// Outline drift from the reference outline
	DisplacementP50 float64 `csv:"displacement_p50"`
	DisplacementP95 float64 `csv:"displacement_p95"`
	DisplacementMax float64 `csv:"displacement_max"`

	// Anchored shapes only
	AnchorErrorMean float64 `csv:"anchor_error_mean"`
	AnchorErrorMax  float64 `csv:"anchor_error_max"`
}

// Percentile returns the p-th empirical quantile of a sorted slice.
// p is clamped to [0, 1]. Returns 0 if the slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// Distances returns |a[i] - b[i]| for the common prefix of a and b.
func Distances(a, b []r2.Vec) []float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = r2.Norm(r2.Sub(a[i], b[i]))
	}
	return out
}

// Speeds returns the magnitude of each velocity.
func Speeds(vel []r2.Vec) []float64 {
	out := make([]float64, len(vel))
	for i, v := range vel {
		out[i] = r2.Norm(v)
	}
	return out
}

// ComputeSpread calculates mean, p50, p95 and max of the values.
func ComputeSpread(values []float64) (mean, p50, p95, max float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p50 = Percentile(sorted, 0.50)
	p95 = Percentile(sorted, 0.95)
	max = sorted[len(sorted)-1]
	return mean, p50, p95, max
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartStep),
		slog.Int64("window_end", s.WindowEndStep),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Float64("blend", s.Blend),
		slog.Float64("recovery", s.Recovery),
		slog.Bool("interacting", s.Interacting),
		slog.Float64("max_speed", s.MaxSpeed),
		slog.Float64("mean_speed", s.MeanSpeed),
		slog.Float64("displacement_p50", s.DisplacementP50),
		slog.Float64("displacement_p95", s.DisplacementP95),
		slog.Float64("displacement_max", s.DisplacementMax),
		slog.Float64("anchor_error_mean", s.AnchorErrorMean),
		slog.Float64("anchor_error_max", s.AnchorErrorMax),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
