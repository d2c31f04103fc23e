package engine

import (
	"fmt"
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/blob/systems"
)

// PointerSet collapses any number of concurrent pointers into one flag.
type PointerSet map[int]struct{}

// Down marks a pointer as pressed.
func (p PointerSet) Down(id int) {
	p[id] = struct{}{}
}

// Up releases a pointer.
func (p PointerSet) Up(id int) {
	delete(p, id)
}

// Active reports whether any pointer is pressed.
func (p PointerSet) Active() bool {
	return len(p) > 0
}

// SetBounds updates the containment rectangle. Non-positive sizes disable containment.
func (e *Engine) SetBounds(width, height float64) {
	b := systems.Bounds{Width: width, Height: height}
	e.boundary.SetBounds(b)
	e.conformance.SetBounds(b)
}

// Bounds returns the containment rectangle.
func (e *Engine) Bounds() (width, height float64) {
	b := e.boundary.Bounds()
	return b.Width, b.Height
}

// SetInteracting sets the raw interaction flag. Starting an interaction wakes
// and unpins every point so held points stay live.
func (e *Engine) SetInteracting(active bool) {
	if active && !e.blender.Active {
		e.wakeAll()
	}
	e.blender.SetActive(active)
}

// SetPointer records a pointer press or release and updates the interaction flag.
func (e *Engine) SetPointer(id int, down bool) {
	if down {
		e.pointers.Down(id)
	} else {
		e.pointers.Up(id)
	}
	e.SetInteracting(e.pointers.Active())
}

// ApplyForce injects an external force on point i for the next step.
// Indices 0..n-1 address the ring, n addresses the center.
func (e *Engine) ApplyForce(i int, fx, fy float64) error {
	if e.body == nil {
		return ErrNoBody
	}
	n := len(e.body.Outer)
	if i < 0 || i > n {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrPointIndex, i, n)
	}
	f := r2.Vec{X: finiteOr(fx, 0), Y: finiteOr(fy, 0)}

	target := e.body.Center
	if i < n {
		target = e.body.Outer[i]
	}
	kin, _, st := e.store.Get(target)
	kin.Force = r2.Add(kin.Force, f)
	st.Wake()
	st.ForcePending = true
	return nil
}

// SetDamping updates linear damping of outer and/or center points, clamped to [0,1].
// A nil argument leaves that value unchanged.
func (e *Engine) SetDamping(outer, center *float64) {
	if outer != nil {
		e.cfg.Network.OuterDamping = clamp01(*outer)
	}
	if center != nil {
		e.cfg.Network.CenterDamping = clamp01(*center)
	}
	if e.body == nil {
		return
	}
	set := func(ent ecs.Entity, v float64) {
		_, mat, _ := e.store.Get(ent)
		mat.Damping = v
	}
	set(e.body.Center, e.cfg.Network.CenterDamping)
	for _, ent := range e.body.Outer {
		set(ent, e.cfg.Network.OuterDamping)
	}
}

// SetAnchorStrength updates the idle and (optionally) interacting anchor pull,
// clamped to [0,inf).
func (e *Engine) SetAnchorStrength(base float64, interact *float64) {
	e.cfg.Anchor.Strength = nonNegative(base)
	if interact != nil {
		e.cfg.Anchor.InteractStrength = nonNegative(*interact)
	}
}

// wakeAll clears sleep and pin state on every point.
func (e *Engine) wakeAll() {
	if e.body == nil {
		return
	}
	_, _, st := e.store.Get(e.body.Center)
	st.Wake()
	for _, ent := range e.body.Outer {
		_, _, st := e.store.Get(ent)
		st.Wake()
	}
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func nonNegative(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if math.IsInf(v, 1) {
		return math.MaxFloat64
	}
	return v
}
