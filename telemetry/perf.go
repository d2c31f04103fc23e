package telemetry

import (
	"log/slog"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase names for the simulation step, in execution order.
const (
	PhaseBlend       = "blend"
	PhaseStiffness   = "stiffness"
	PhaseConformance = "conformance"
	PhaseIntegrate   = "integrate"
	PhaseBoundary    = "boundary"
)

// Phases lists the step phases in execution order.
var Phases = []string{PhaseBlend, PhaseStiffness, PhaseConformance, PhaseIntegrate, PhaseBoundary}

// stepTiming holds timing data for a single engine step.
type stepTiming struct {
	total  time.Duration
	phases map[string]time.Duration
}

// PerfCollector tracks engine step timing over a rolling window of steps.
// Phase totals are kept incrementally as steps enter and leave the window.
// A nil collector ignores all calls.
type PerfCollector struct {
	ring  []stepTiming
	next  int
	count int

	windowTotal  time.Duration
	windowPhases map[string]time.Duration

	// Step in progress
	current    map[string]time.Duration
	stepStart  time.Time
	phaseStart time.Time
	phase      string

	// Frame timing (graphics mode)
	lastFrame     time.Time
	frameDuration time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize steps.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		ring:         make([]stepTiming, windowSize),
		windowPhases: make(map[string]time.Duration),
		current:      make(map[string]time.Duration),
	}
}

// StartTick begins timing a new engine step.
func (p *PerfCollector) StartTick() {
	if p == nil {
		return
	}
	p.stepStart = time.Now()
	p.current = make(map[string]time.Duration, len(Phases))
	p.phase = ""
}

// StartPhase closes the running phase, if any, and starts timing phase.
func (p *PerfCollector) StartPhase(phase string) {
	if p == nil {
		return
	}
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.phase = phase
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase != "" {
		p.current[p.phase] += now.Sub(p.phaseStart)
	}
}

// EndTick finishes the step and pushes it into the window,
// evicting the oldest step once the window is full.
func (p *PerfCollector) EndTick() {
	if p == nil {
		return
	}
	now := time.Now()
	p.closePhase(now)
	p.phase = ""

	if p.count == len(p.ring) {
		old := p.ring[p.next]
		p.windowTotal -= old.total
		for name, d := range old.phases {
			p.windowPhases[name] -= d
		}
	} else {
		p.count++
	}

	st := stepTiming{total: now.Sub(p.stepStart), phases: p.current}
	p.ring[p.next] = st
	p.next = (p.next + 1) % len(p.ring)
	p.windowTotal += st.total
	for name, d := range st.phases {
		p.windowPhases[name] += d
	}
}

// RecordFrame records frame timing for graphics mode.
func (p *PerfCollector) RecordFrame() {
	if p == nil {
		return
	}
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frameDuration = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats holds aggregated step timing.
type PerfStats struct {
	// Step timing
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration
	P95TickDuration time.Duration

	// Phase breakdown (average durations)
	PhaseAvg map[string]time.Duration

	// Phase percentages of total step time
	PhasePct map[string]float64

	// Throughput
	TicksPerSecond float64

	// Frame timing (graphics mode)
	FrameDuration time.Duration
	FPS           float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	stats := PerfStats{
		PhaseAvg: make(map[string]time.Duration),
		PhasePct: make(map[string]float64),
	}
	if p == nil {
		return stats
	}

	stats.FrameDuration = p.frameDuration
	if p.frameDuration > 0 {
		stats.FPS = float64(time.Second) / float64(p.frameDuration)
	}
	if p.count == 0 {
		return stats
	}

	n := time.Duration(p.count)
	stats.AvgTickDuration = p.windowTotal / n
	stats.MinTickDuration, stats.MaxTickDuration, stats.P95TickDuration = p.spread()

	for name, sum := range p.windowPhases {
		if sum <= 0 {
			continue
		}
		avg := sum / n
		stats.PhaseAvg[name] = avg
		if stats.AvgTickDuration > 0 {
			stats.PhasePct[name] = float64(avg) / float64(stats.AvgTickDuration) * 100
		}
	}

	if stats.AvgTickDuration > 0 {
		stats.TicksPerSecond = float64(time.Second) / float64(stats.AvgTickDuration)
	}
	return stats
}

// spread returns the min, max and 95th percentile step duration in the window.
func (p *PerfCollector) spread() (lo, hi, p95 time.Duration) {
	d := make([]float64, p.count)
	for i := range d {
		d[i] = float64(p.ring[i].total)
	}
	slices.Sort(d)
	return time.Duration(d[0]), time.Duration(d[len(d)-1]),
		time.Duration(stat.Quantile(0.95, stat.Empirical, d, nil))
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"p95_tick_us", s.P95TickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}

	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}

	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", int(pct*10)/10.0)
		}
	}

	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("p95_tick_us", s.P95TickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}

	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}

	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}

	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is the perf.csv row.
type PerfStatsCSV struct {
	WindowEnd      int64   `csv:"window_end"`
	AvgTickUS      int64   `csv:"avg_tick_us"`
	MinTickUS      int64   `csv:"min_tick_us"`
	P95TickUS      int64   `csv:"p95_tick_us"`
	MaxTickUS      int64   `csv:"max_tick_us"`
	TicksPerSec    float64 `csv:"ticks_per_sec"`
	FPS            float64 `csv:"fps"`
	BlendPct       float64 `csv:"blend_pct"`
	StiffnessPct   float64 `csv:"stiffness_pct"`
	ConformancePct float64 `csv:"conformance_pct"`
	IntegratePct   float64 `csv:"integrate_pct"`
	BoundaryPct    float64 `csv:"boundary_pct"`
}

// ToCSV flattens the stats into a perf.csv row.
func (s PerfStats) ToCSV(windowEnd int64) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:      windowEnd,
		AvgTickUS:      s.AvgTickDuration.Microseconds(),
		MinTickUS:      s.MinTickDuration.Microseconds(),
		P95TickUS:      s.P95TickDuration.Microseconds(),
		MaxTickUS:      s.MaxTickDuration.Microseconds(),
		TicksPerSec:    s.TicksPerSecond,
		FPS:            s.FPS,
		BlendPct:       s.PhasePct[PhaseBlend],
		StiffnessPct:   s.PhasePct[PhaseStiffness],
		ConformancePct: s.PhasePct[PhaseConformance],
		IntegratePct:   s.PhasePct[PhaseIntegrate],
		BoundaryPct:    s.PhasePct[PhaseBoundary],
	}
}
