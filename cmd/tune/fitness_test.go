package main

import (
	"math"
	"testing"
	"time"

	"github.com/pthm-cable/blob/telemetry"
)

// ---------- window analysis ----------

func TestAtRest(t *testing.T) {
	tests := []struct {
		name string
		ws   telemetry.WindowStats
		want bool
	}{
		{"still ring", telemetry.WindowStats{MaxSpeed: 0.01, DisplacementP95: 0.5}, true},
		{"moving", telemetry.WindowStats{MaxSpeed: 1, DisplacementP95: 0.5}, false},
		{"handled", telemetry.WindowStats{Interacting: true}, false},
		{"drifted ring", telemetry.WindowStats{MaxSpeed: 0.01, DisplacementP95: 5}, false},
		{"anchored close", telemetry.WindowStats{MaxSpeed: 0.01, AnchorErrorMax: 0.5, DisplacementP95: 5}, true},
		{"anchored far", telemetry.WindowStats{MaxSpeed: 0.01, AnchorErrorMax: 3}, false},
		{"nan speed", telemetry.WindowStats{MaxSpeed: math.NaN()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := atRest(tt.ws); got != tt.want {
				t.Errorf("atRest = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyzeWindows(t *testing.T) {
	windows := []telemetry.WindowStats{
		{WindowEndStep: 10, MaxSpeed: 0, DisplacementP95: 0},
		{WindowEndStep: 20, Interacting: true, MaxSpeed: 2, DisplacementP95: 12},
		{WindowEndStep: 30, Interacting: true, MaxSpeed: 1, DisplacementP95: 25},
		{WindowEndStep: 40, MaxSpeed: 0.5, DisplacementP95: 8},
		{WindowEndStep: 50, MaxSpeed: 0.01, DisplacementP95: 1},
		{WindowEndStep: 60, MaxSpeed: 0.01, DisplacementP95: 0.5},
	}

	peak, settle := analyzeWindows(windows, 10, 30, 1000)
	if peak != 25 {
		t.Errorf("peak = %v, want 25", peak)
	}
	if settle != 20 {
		t.Errorf("settle = %d, want 20", settle)
	}
}

func TestAnalyzeWindowsNeverSettles(t *testing.T) {
	windows := []telemetry.WindowStats{
		{WindowEndStep: 20, Interacting: true, MaxSpeed: 2, DisplacementP95: 12},
		{WindowEndStep: 40, MaxSpeed: 3, DisplacementP95: 30},
	}

	_, settle := analyzeWindows(windows, 10, 30, 500)
	if settle != 500 {
		t.Errorf("settle = %d, want maxTicks 500", settle)
	}
}

// ---------- fitness ----------

func TestComputeFitness(t *testing.T) {
	tests := []struct {
		name string
		r    runResult
		want float64
	}{
		{"soft and quick", runResult{settleSteps: 40, peakDeform: 30}, 40},
		{"stiff", runResult{settleSteps: 40, peakDeform: 10}, 40 + deformationWeight*10},
		{"never settles", runResult{settleSteps: 1200, peakDeform: targetDeformation}, 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := computeFitness(tt.r); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("computeFitness = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{65 * time.Second, "1m05s"},
		{2*time.Hour + 3*time.Minute + 4*time.Second, "2h03m04s"},
		{0, "0m00s"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
