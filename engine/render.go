package engine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/blob/components"
)

// RenderState is a read-only snapshot of point positions.
// Outer is in ring order, which is also the outline winding.
type RenderState struct {
	Center r2.Vec
	Outer  []r2.Vec
}

// RenderState copies the current positions. It is empty when no body is live.
func (e *Engine) RenderState() RenderState {
	if e.body == nil {
		return RenderState{}
	}
	rs := RenderState{
		Center: e.store.Pos(e.body.Center),
		Outer:  make([]r2.Vec, len(e.body.Outer)),
	}
	for i, ent := range e.body.Outer {
		rs.Outer[i] = e.store.Pos(ent)
	}
	return rs
}

// Velocities returns the velocity of every outer point followed by the center.
func (e *Engine) Velocities() []r2.Vec {
	if e.body == nil {
		return nil
	}
	out := make([]r2.Vec, 0, len(e.body.Outer)+1)
	for _, ent := range e.body.Outer {
		kin, _, _ := e.store.Get(ent)
		out = append(out, kin.Vel)
	}
	kin, _, _ := e.store.Get(e.body.Center)
	return append(out, kin.Vel)
}

// MaxSpeed returns the largest point speed.
func (e *Engine) MaxSpeed() float64 {
	var max float64
	for _, v := range e.Velocities() {
		if s := r2.Norm(v); s > max {
			max = s
		}
	}
	return max
}

// Pinned reports whether outer point i is snapped onto its anchor.
func (e *Engine) Pinned(i int) bool {
	if e.body == nil || i < 0 || i >= len(e.body.Outer) {
		return false
	}
	_, _, st := e.store.Get(e.body.Outer[i])
	return st.Pinned
}

// Point returns copies of the components of point i.
// Indices 0..n-1 address the ring, n addresses the center.
func (e *Engine) Point(i int) (components.Kinematics, components.Material, components.Settle, error) {
	if e.body == nil {
		return components.Kinematics{}, components.Material{}, components.Settle{}, ErrNoBody
	}
	n := len(e.body.Outer)
	if i < 0 || i > n {
		return components.Kinematics{}, components.Material{}, components.Settle{}, fmt.Errorf("%w: %d not in [0,%d]", ErrPointIndex, i, n)
	}
	ent := e.body.Center
	if i < n {
		ent = e.body.Outer[i]
	}
	kin, mat, st := e.store.Get(ent)
	return *kin, *mat, *st, nil
}

// Nearest returns the index of the outer point closest to p, or -1 with no body.
func (e *Engine) Nearest(p r2.Vec) (int, float64) {
	if e.body == nil {
		return -1, 0
	}
	best, bestDist := -1, math.Inf(1)
	for i, ent := range e.body.Outer {
		if d := r2.Norm(r2.Sub(e.store.Pos(ent), p)); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}

// LinkEnds returns the current endpoint positions of a constraint of the live body.
func (e *Engine) LinkEnds(c components.Constraint) (a, b r2.Vec) {
	return e.store.Pos(c.A), e.store.Pos(c.B)
}
