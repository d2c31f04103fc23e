package main

import (
	"io"
	"log/slog"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/blob/config"
	"github.com/pthm-cable/blob/game"
	"github.com/pthm-cable/blob/telemetry"
)

// Scenario is one scripted drag on one shape.
type Scenario struct {
	Shape string
	Drag  game.DragScript
}

// DefaultScenarios drags a free ring and two anchored outlines.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Shape: "ring", Drag: game.DragScript{Start: 30, Duration: 90, Point: 0, Dx: 80}},
		{Shape: "star", Drag: game.DragScript{Start: 30, Duration: 90, Point: 3, Dx: -60, Dy: 40}},
		{Shape: "heart", Drag: game.DragScript{Start: 30, Duration: 90, Point: 6, Dy: 70}},
	}
}

// Settle thresholds and fitness weights.
const (
	settleSpeed        = 0.05 // Max point speed considered at rest
	settleDisplacement = 2.0  // P95 outline drift considered recovered (ring)
	settleAnchorError  = 1.0  // Max anchor error considered recovered (anchored)
	statsWindowSteps   = 10   // Telemetry resolution during tuning

	// The drag should visibly deform the body; too stiff a body is penalized
	// by the shortfall against this displacement.
	targetDeformation = 20.0
	deformationWeight = 20.0
)

// FitnessEvaluator runs headless scenarios and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int64
	scenarios  []Scenario
	baseConfig *config.Config

	mu              sync.Mutex
	lastSettle      float64 // mean settle steps from the most recent Evaluate call
	lastDeformation float64
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int64, scenarios []Scenario, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		scenarios:  scenarios,
		baseConfig: baseCfg,
	}
}

// LastResult returns mean settle steps and peak deformation from the most recent evaluation.
func (fe *FitnessEvaluator) LastResult() (settle, deformation float64) {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastSettle, fe.lastDeformation
}

// runResult holds the outcome of a single scenario run.
type runResult struct {
	settleSteps int64                   // steps from release to rest, maxTicks if never
	peakDeform  float64                 // largest P95 drift observed while held
	windowStats []telemetry.WindowStats // collected via the stats callback
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]runResult, len(fe.scenarios))
	var wg sync.WaitGroup

	for i, sc := range fe.scenarios {
		wg.Add(1)
		go func(idx int, sc Scenario) {
			defer wg.Done()
			results[idx] = fe.runScenario(x, sc)
		}(i, sc)
	}
	wg.Wait()

	fitness := make([]float64, len(results))
	settle := make([]float64, len(results))
	deform := make([]float64, len(results))
	for i, r := range results {
		fitness[i] = computeFitness(r)
		settle[i] = float64(r.settleSteps)
		deform[i] = r.peakDeform
	}

	fe.mu.Lock()
	fe.lastSettle = stat.Mean(settle, nil)
	fe.lastDeformation = stat.Mean(deform, nil)
	fe.mu.Unlock()

	return stat.Mean(fitness, nil)
}

// runScenario executes one headless scenario until the body settles after
// release or maxTicks elapse.
func (fe *FitnessEvaluator) runScenario(x []float64, sc Scenario) runResult {
	cfg := fe.baseConfig.Clone()
	fe.params.ApplyToConfig(cfg, x)
	cfg.Telemetry.StatsWindow = statsWindowSteps

	result := runResult{settleSteps: fe.maxTicks}

	g, err := game.NewGameWithOptions(game.Options{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Headless:       true,
		StepsPerUpdate: 1,
		Shape:          sc.Shape,
		Drag:           sc.Drag,
	})
	if err != nil {
		slog.Error("scenario failed to start", "shape", sc.Shape, "error", err)
		return result
	}
	defer g.Unload()

	release := sc.Drag.Start + sc.Drag.Duration
	settled := false
	g.SetStatsCallback(func(ws telemetry.WindowStats) {
		result.windowStats = append(result.windowStats, ws)
		if ws.WindowEndStep > release && atRest(ws) {
			settled = true
		}
	})

	for !settled && g.Tick() < fe.maxTicks {
		g.UpdateHeadless()
	}

	result.peakDeform, result.settleSteps = analyzeWindows(result.windowStats, sc.Drag.Start, release, fe.maxTicks)
	return result
}

// analyzeWindows finds the peak drift while held and the first window after
// release at which the body is at rest. Missing settle returns maxTicks.
func analyzeWindows(windows []telemetry.WindowStats, start, release, maxTicks int64) (peak float64, settle int64) {
	settle = maxTicks
	for _, w := range windows {
		if w.WindowEndStep > start && w.WindowEndStep <= release {
			peak = math.Max(peak, w.DisplacementP95)
			continue
		}
		if w.WindowEndStep <= release {
			continue
		}
		if atRest(w) {
			return peak, w.WindowEndStep - release
		}
	}
	return peak, settle
}

// atRest reports whether a window shows a recovered body.
func atRest(w telemetry.WindowStats) bool {
	if w.Interacting || w.MaxSpeed > settleSpeed || math.IsNaN(w.MaxSpeed) {
		return false
	}
	if w.AnchorErrorMax > 0 {
		return w.AnchorErrorMax <= settleAnchorError
	}
	return w.DisplacementP95 <= settleDisplacement
}

// computeFitness calculates the scalar fitness (lower = better):
// settle steps plus a penalty for a drag that barely deforms the body.
func computeFitness(r runResult) float64 {
	shortfall := math.Max(0, targetDeformation-r.peakDeform)
	return float64(r.settleSteps) + deformationWeight*shortfall
}
