package game

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Pointer ids reported to the engine.
const (
	pointerDrag   = 0
	pointerPinch  = 1
	pointerScript = 2
)

// simulationStep applies held pointer forces, steps the engine and
// flushes telemetry windows.
func (g *Game) simulationStep(dtMs float64) {
	g.applyScript()
	g.applyPointerForces()

	before := g.engine.Steps()
	g.engine.Step(dtMs)
	if g.engine.Steps() == before {
		return
	}
	g.collector.AddTime(min(dtMs, g.cfg.Simulation.MaxStepMs))
	g.flushTelemetry()
}

// applyScript presses, drives and releases the scripted drag.
func (g *Game) applyScript() {
	if g.drag.Duration <= 0 || g.engine.Body() == nil {
		return
	}
	step := g.engine.Steps()
	active := g.drag.Active(step)
	if step == g.drag.Start {
		g.engine.SetPointer(pointerScript, true)
	}
	if step == g.drag.Start+g.drag.Duration {
		g.engine.SetPointer(pointerScript, false)
		g.logger.Info("scripted drag released", "step", step)
	}
	if !active {
		return
	}

	anchor := g.collector.Reference(g.drag.Point)
	target := r2.Add(anchor, r2.Vec{X: g.drag.Dx, Y: g.drag.Dy})
	g.pullToward(g.drag.Point, target)
}

// applyPointerForces drives the mouse-held point and the pinch.
func (g *Game) applyPointerForces() {
	if g.dragIndex >= 0 {
		g.pullToward(g.dragIndex, g.cursorWorld())
	}
	if g.pinching {
		g.pinch()
	}
}

// pullToward applies a damped spring force from point i to target.
func (g *Game) pullToward(i int, target r2.Vec) {
	rs := g.engine.RenderState()
	if i < 0 || i >= len(rs.Outer) {
		return
	}
	kin, _, _, err := g.engine.Point(i)
	if err != nil {
		return
	}
	host := g.cfg.Host
	f := r2.Sub(
		r2.Scale(host.DragGain, r2.Sub(target, rs.Outer[i])),
		r2.Scale(host.DragDamping, kin.Vel),
	)
	if err := g.engine.ApplyForce(i, f.X, f.Y); err != nil {
		g.logger.Debug("drag force rejected", "point", i, "error", err)
	}
}

// pinch pushes every outer point toward the center in proportion to its radius.
func (g *Game) pinch() {
	rs := g.engine.RenderState()
	gain := g.cfg.Host.PinchGain
	for i, p := range rs.Outer {
		f := r2.Scale(gain, r2.Sub(rs.Center, p))
		if err := g.engine.ApplyForce(i, f.X, f.Y); err != nil {
			g.logger.Debug("pinch force rejected", "point", i, "error", err)
		}
	}
}
