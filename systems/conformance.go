package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/blob/components"
	"github.com/pthm-cable/blob/config"
)

// ConformanceSystem pulls the ring back toward its target silhouette, either
// by radial pressure around the center or by attraction to explicit anchors.
type ConformanceSystem struct {
	store  *PointStore
	bounds Bounds
}

// NewConformanceSystem creates a conformance system over the given points.
func NewConformanceSystem(store *PointStore) *ConformanceSystem {
	return &ConformanceSystem{store: store}
}

// SetBounds updates the containment rectangle. Anchors inside its margins are
// never snapped onto, since containment would fight the pin.
func (s *ConformanceSystem) SetBounds(b Bounds) {
	s.bounds = b.sanitized()
}

// PressureGain returns the radial pressure gain for the current interaction state.
// Idle recovery ramps toward a cap that stays below the interacting gain.
func PressureGain(b *Blender, cfg config.PressureConfig) float64 {
	if b.Active {
		return lerp(cfg.IdleGain, cfg.InteractGain, b.Blend)
	}
	capGain := math.Min(cfg.RecoverGain, cfg.InteractGain)
	return lerp(cfg.IdleGain, capGain, b.Recovery)
}

// Update accumulates conformance forces for one step of h reference frames.
func (s *ConformanceSystem) Update(body *components.SoftBody, b *Blender, cfg *config.Config, h float64) {
	if body == nil || len(body.Outer) == 0 {
		return
	}
	if body.Anchored() {
		s.attract(body, b, cfg.Anchor, cfg.Boundary, h)
		return
	}
	s.pressure(body, b, cfg.Pressure)
}

// pressure pushes each outer point toward its rest radius along the center ray.
func (s *ConformanceSystem) pressure(body *components.SoftBody, b *Blender, cfg config.PressureConfig) {
	center := s.store.Pos(body.Center)
	gain := PressureGain(b, cfg)

	for i, e := range body.Outer {
		kin, _, _ := s.store.Get(e)
		dir, d := unitOr(r2.Sub(kin.Pos, center), unitX)
		rest := body.RestRadii[i]

		f := gain * (rest - d)
		limit := cfg.OverstretchRatio * rest
		if d > limit {
			f += cfg.OverstretchGain * (limit - d)
		}
		kin.Force = r2.Add(kin.Force, r2.Scale(f, dir))
	}
}

// attract pulls each outer point toward its anchor. Idle points close to
// their anchor are snapped onto it and pinned, unless the anchor lies in a
// containment margin.
func (s *ConformanceSystem) attract(body *components.SoftBody, b *Blender, cfg config.AnchorConfig, bc config.BoundaryConfig, h float64) {
	strength, damping := cfg.Strength, cfg.IdleDamping
	if b.Active {
		strength, damping = cfg.InteractStrength, cfg.InteractDamping
	}
	velKeep := math.Pow(1-clamp01(damping), h)

	for i, e := range body.Outer {
		kin, _, st := s.store.Get(e)
		if st.Pinned {
			continue
		}
		anchor := body.Anchors[i]
		delta := r2.Sub(anchor, kin.Pos)

		if !b.Active && !st.ForcePending && r2.Norm(delta) <= cfg.SnapDistance && s.snappable(anchor, bc) {
			kin.Pos = anchor
			kin.Prev = anchor
			kin.Vel = r2.Vec{}
			kin.Force = r2.Vec{}
			kin.AngularVelocity = 0
			st.Pinned = true
			st.Asleep = false
			st.StillFrames = 0
			continue
		}

		kin.Force = r2.Add(kin.Force, r2.Scale(strength, delta))
		kin.Vel = r2.Scale(velKeep, kin.Vel)
	}
}

// snappable reports whether an anchor lies clear of every containment margin.
func (s *ConformanceSystem) snappable(anchor r2.Vec, bc config.BoundaryConfig) bool {
	_, inMargin := ContainmentForce(anchor, s.bounds, bc, false)
	return !inMargin
}
