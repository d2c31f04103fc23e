package telemetry

import "gonum.org/v1/gonum/spatial/r2"

// Sample is the engine state observed after one step.
type Sample struct {
	Step        int64
	Outer       []r2.Vec
	Velocities  []r2.Vec
	Anchors     []r2.Vec // Nil for ring shapes
	Blend       float64
	Recovery    float64
	Interacting bool
}

// Collector groups steps into windows and produces WindowStats.
type Collector struct {
	windowSteps int64

	windowStart int64
	elapsedMs   float64
	reference   []r2.Vec
}

// NewCollector creates a collector.
// windowSteps: number of steps per stats window.
func NewCollector(windowSteps int) *Collector {
	if windowSteps < 1 {
		windowSteps = 1
	}
	return &Collector{
		windowSteps: int64(windowSteps),
	}
}

// SetReference sets the outline displacement is measured against.
func (c *Collector) SetReference(outer []r2.Vec) {
	c.reference = make([]r2.Vec, len(outer))
	copy(c.reference, outer)
}

// AddTime accumulates simulated milliseconds.
func (c *Collector) AddTime(dtMs float64) {
	c.elapsedMs += dtMs
}

// ShouldFlush reports whether the window ending at step is complete.
func (c *Collector) ShouldFlush(step int64) bool {
	return step-c.windowStart >= c.windowSteps
}

// Flush computes stats for the current window from the sample and starts a new window.
func (c *Collector) Flush(s Sample) WindowStats {
	ws := Measure(s, c.reference)
	ws.WindowStartStep = c.windowStart
	ws.WindowEndStep = s.Step
	ws.SimTimeSec = c.elapsedMs / 1000
	c.windowStart = s.Step
	return ws
}

// Measure computes window stats for a single sample against a reference outline.
func Measure(s Sample, reference []r2.Vec) WindowStats {
	ws := WindowStats{
		WindowEndStep: s.Step,
		Blend:         s.Blend,
		Recovery:      s.Recovery,
		Interacting:   s.Interacting,
	}
	ws.MeanSpeed, _, _, ws.MaxSpeed = ComputeSpread(Speeds(s.Velocities))
	if len(reference) > 0 {
		_, ws.DisplacementP50, ws.DisplacementP95, ws.DisplacementMax = ComputeSpread(Distances(s.Outer, reference))
	}
	if len(s.Anchors) > 0 {
		ws.AnchorErrorMean, _, _, ws.AnchorErrorMax = ComputeSpread(Distances(s.Outer, s.Anchors))
	}
	return ws
}

// Reference returns point i of the reference outline, or the zero vector.
func (c *Collector) Reference(i int) r2.Vec {
	if i < 0 || i >= len(c.reference) {
		return r2.Vec{}
	}
	return c.reference[i]
}

// ReferenceOutline returns a copy of the reference outline.
func (c *Collector) ReferenceOutline() []r2.Vec {
	out := make([]r2.Vec, len(c.reference))
	copy(out, c.reference)
	return out
}
