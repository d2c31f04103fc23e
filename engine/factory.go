package engine

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/blob/systems"
)

// BuildRing creates a circular ring of n points around center.
// Ring shapes conform by radial pressure.
func (e *Engine) BuildRing(center r2.Vec, radius float64, n int) (SoftBodyID, error) {
	return e.replace("build", center, true, systems.RingOutline(center, radius, n), false)
}

// BuildFromAnchors creates a body whose outer points start on, and are
// attracted to, the given anchors. The center is the anchors' centroid.
func (e *Engine) BuildFromAnchors(anchors []r2.Vec) (SoftBodyID, error) {
	return e.replace("build", r2.Vec{}, false, anchors, true)
}

// ResetRing atomically replaces the live body with a new ring.
// On error the previous body is kept.
func (e *Engine) ResetRing(center r2.Vec, radius float64, n int) (SoftBodyID, error) {
	return e.replace("reset", center, true, systems.RingOutline(center, radius, n), false)
}

// ResetAnchored atomically replaces the live body with an anchored one.
// On error the previous body is kept.
func (e *Engine) ResetAnchored(anchors []r2.Vec) (SoftBodyID, error) {
	return e.replace("reset", r2.Vec{}, false, anchors, true)
}

// replace validates the outline, tears down the old body and builds the new one.
// Nothing observable changes when validation fails.
func (e *Engine) replace(op string, center r2.Vec, hasCenter bool, outer []r2.Vec, anchored bool) (SoftBodyID, error) {
	if err := systems.ValidateOutline(outer); err != nil {
		e.logger.Warn("shape rejected", "op", op, "points", len(outer), "error", err)
		return 0, err
	}

	e.teardown()

	body, err := systems.BuildNetwork(e.store, center, hasCenter, outer, e.cfg)
	if err != nil {
		// Unreachable after validation; keep the engine consistent regardless.
		return 0, err
	}
	if anchored {
		body.Anchors = make([]r2.Vec, len(outer))
		copy(body.Anchors, outer)
	}
	systems.RescaleStiffness(body, e.blender.Softening(), e.cfg.Softening)

	e.body = body
	e.bodyID = e.nextID
	e.nextID++

	e.logger.Debug("soft body built",
		"op", op,
		"id", e.bodyID,
		"mode", e.Mode().String(),
		"outer", len(body.Outer),
		"ring_links", len(body.Ring),
		"spokes", len(body.Spokes),
	)
	return e.bodyID, nil
}
