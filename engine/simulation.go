package engine

import (
	"math"

	"github.com/pthm-cable/blob/systems"
	"github.com/pthm-cable/blob/telemetry"
)

// ClampStep normalizes a host timestep in milliseconds to [0, max].
// Non-finite and negative values become 0.
func ClampStep(dtMs, max float64) float64 {
	if math.IsNaN(dtMs) || math.IsInf(dtMs, 0) || dtMs <= 0 {
		return 0
	}
	if dtMs > max {
		return max
	}
	return dtMs
}

// Step advances the simulation by dtMs milliseconds, clamped to the
// configured maximum. Within a step, forces precede integration, which
// precedes boundary correction.
func (e *Engine) Step(dtMs float64) {
	dt := ClampStep(dtMs, e.cfg.Simulation.MaxStepMs)
	if dt == 0 {
		return
	}
	h := dt * e.cfg.Derived.InvFrameMs

	e.perf.StartTick()
	defer e.perf.EndTick()

	// 1. Interaction blend and recovery
	e.perf.StartPhase(telemetry.PhaseBlend)
	e.blender.Advance(dt)
	if e.body == nil {
		return
	}
	active := e.blender.Active

	// 2. Constraint stiffness from base values
	e.perf.StartPhase(telemetry.PhaseStiffness)
	systems.RescaleStiffness(e.body, e.blender.Softening(), e.cfg.Softening)

	// 3. Radial pressure or anchor attraction
	e.perf.StartPhase(telemetry.PhaseConformance)
	e.conformance.Update(e.body, e.blender, e.cfg, h)

	// 4. Positions and constraint projection
	e.perf.StartPhase(telemetry.PhaseIntegrate)
	e.integration.Update(e.body, e.cfg, h, !active)

	// 5. Containment and its damping
	e.perf.StartPhase(telemetry.PhaseBoundary)
	e.boundary.Update(e.body, e.cfg, h, active)

	e.steps++
}
