package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/blob/components"
	"github.com/pthm-cable/blob/config"
)

// IntegrationSystem advances point positions and projects constraints.
type IntegrationSystem struct {
	store     *PointStore
	residuals []float64 // Force magnitude per point this step, center last
}

// NewIntegrationSystem creates an integration system over the given points.
func NewIntegrationSystem(store *PointStore) *IntegrationSystem {
	return &IntegrationSystem{store: store}
}

// Update runs one integration pass over h reference frames.
func (s *IntegrationSystem) Update(body *components.SoftBody, cfg *config.Config, h float64, idle bool) {
	if body == nil || h <= 0 {
		return
	}
	n := len(body.Outer)
	if cap(s.residuals) < n+1 {
		s.residuals = make([]float64, n+1)
	}
	s.residuals = s.residuals[:n+1]

	sim := cfg.Simulation
	for i := 0; i <= n; i++ {
		s.residuals[i] = s.predict(s.entity(body, i), sim, h)
	}

	for iter := 0; iter < sim.Iterations; iter++ {
		for i := range body.Ring {
			s.project(&body.Ring[i], h)
		}
		for i := range body.Spokes {
			s.project(&body.Spokes[i], h)
		}
	}

	for i := 0; i <= n; i++ {
		s.finish(s.entity(body, i), s.residuals[i], cfg, h, idle)
	}
}

// entity maps 0..n-1 to ring points and n to the center.
func (s *IntegrationSystem) entity(body *components.SoftBody, i int) ecs.Entity {
	if i == len(body.Outer) {
		return body.Center
	}
	return body.Outer[i]
}

// predict applies damping and accumulated force, then moves the point.
// It returns the magnitude of the consumed force.
func (s *IntegrationSystem) predict(e ecs.Entity, sim config.SimulationConfig, h float64) float64 {
	kin, mat, st := s.store.Get(e)
	residual := r2.Norm(kin.Force)
	if !finite(residual) {
		residual = sim.MaxForce
	}
	kin.Prev = kin.Pos
	force := clampNorm(kin.Force, sim.MaxForce)
	kin.Force = r2.Vec{}
	st.ForcePending = false

	if st.Pinned {
		kin.Vel = r2.Vec{}
		return residual
	}

	keep := math.Pow(1-clamp01(mat.Damping), h)
	kin.Vel = r2.Add(r2.Scale(keep, kin.Vel), r2.Scale(h, force))
	kin.Vel = clampNorm(kin.Vel, sim.MaxSpeed)
	kin.AngularVelocity *= keep
	kin.Pos = r2.Add(kin.Pos, r2.Scale(h, kin.Vel))
	return residual
}

// project moves both endpoints of a constraint toward its rest length.
// Pinned endpoints do not move.
func (s *IntegrationSystem) project(c *components.Constraint, h float64) {
	ka, _, sa := s.store.Get(c.A)
	kb, _, sb := s.store.Get(c.B)

	wa, wb := 1.0, 1.0
	if sa.Pinned {
		wa = 0
	}
	if sb.Pinned {
		wb = 0
	}
	if wa+wb == 0 {
		return
	}

	stiffness := 1 - math.Pow(1-clamp01(c.AppliedStiffness), h)
	dir, d := unitOr(r2.Sub(kb.Pos, ka.Pos), unitX)
	corr := (d - c.RestLength) * stiffness / (wa + wb)
	if !finite(corr) {
		return
	}
	ka.Pos = r2.Add(ka.Pos, r2.Scale(corr*wa, dir))
	kb.Pos = r2.Sub(kb.Pos, r2.Scale(corr*wb, dir))
}

// finish derives velocity from the corrected position and updates settling.
func (s *IntegrationSystem) finish(e ecs.Entity, residual float64, cfg *config.Config, h float64, idle bool) {
	kin, _, st := s.store.Get(e)
	if st.Pinned {
		kin.Pos = kin.Prev
		kin.Vel = r2.Vec{}
		return
	}
	if !finiteVec(kin.Pos) {
		kin.Pos = kin.Prev
		kin.Vel = r2.Vec{}
		return
	}
	kin.Vel = clampNorm(r2.Scale(1/h, r2.Sub(kin.Pos, kin.Prev)), cfg.Simulation.MaxSpeed)

	settle := cfg.Settle
	if !settle.Enabled || !idle {
		st.Asleep = false
		st.StillFrames = 0
		return
	}

	speed := r2.Norm(kin.Vel)
	if st.Asleep {
		if speed < settle.WakeSpeed && residual < settle.SleepForce*4 {
			kin.Vel = r2.Vec{}
			return
		}
		st.Asleep = false
		st.StillFrames = 0
		return
	}
	if speed < settle.SleepSpeed && residual < settle.SleepForce {
		st.StillFrames++
		if st.StillFrames >= settle.SleepFrames {
			st.Asleep = true
			kin.Vel = r2.Vec{}
		}
		return
	}
	st.StillFrames = 0
}
