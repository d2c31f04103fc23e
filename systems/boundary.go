package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/blob/components"
	"github.com/pthm-cable/blob/config"
)

// Bounds represents the simulation bounds. Non-positive dimensions disable containment.
type Bounds struct {
	Width, Height float64
}

// Enabled reports whether containment applies.
func (b Bounds) Enabled() bool {
	return b.Width > 0 && b.Height > 0 && finite(b.Width) && finite(b.Height)
}

// BoundarySystem pushes points back inside the bounds with a soft inward force.
// It is not a rigid wall.
type BoundarySystem struct {
	store  *PointStore
	bounds Bounds
}

// NewBoundarySystem creates a boundary system with containment disabled.
func NewBoundarySystem(store *PointStore) *BoundarySystem {
	return &BoundarySystem{store: store}
}

// SetBounds updates the containment rectangle.
func (s *BoundarySystem) SetBounds(b Bounds) {
	s.bounds = b.sanitized()
}

// sanitized zeroes non-finite or negative sizes.
func (b Bounds) sanitized() Bounds {
	if !finite(b.Width) || b.Width < 0 {
		b.Width = 0
	}
	if !finite(b.Height) || b.Height < 0 {
		b.Height = 0
	}
	return b
}

// Bounds returns the current containment rectangle.
func (s *BoundarySystem) Bounds() Bounds {
	return s.bounds
}

// ContainmentForce returns the inward force for a point at pos, before role scaling.
// The second result reports whether pos lies inside any margin.
func ContainmentForce(pos r2.Vec, b Bounds, cfg config.BoundaryConfig, active bool) (r2.Vec, bool) {
	if !b.Enabled() {
		return r2.Vec{}, false
	}
	gain := cfg.IdleGain
	if active {
		gain = cfg.InteractGain
	}
	// Margins never exceed half the bounds, so opposite edges cannot both fire.
	mx := math.Min(cfg.MarginX, b.Width/2)
	my := math.Min(cfg.MarginY, b.Height/2)

	var f r2.Vec
	inside := false
	if pos.X < mx {
		f.X += gain * (mx - pos.X)
		inside = true
	} else if pos.X > b.Width-mx {
		f.X -= gain * (pos.X - (b.Width - mx))
		inside = true
	}
	if pos.Y < my {
		f.Y += gain * (my - pos.Y)
		inside = true
	} else if pos.Y > b.Height-my {
		f.Y -= gain * (pos.Y - (b.Height - my))
		inside = true
	}
	return f, inside
}

// Update applies containment to every point of the body after integration.
func (s *BoundarySystem) Update(body *components.SoftBody, cfg *config.Config, h float64, active bool) {
	if body == nil || !s.bounds.Enabled() {
		return
	}
	s.apply(body.Center, cfg, h, active)
	for _, e := range body.Outer {
		s.apply(e, cfg, h, active)
	}
}

func (s *BoundarySystem) apply(e ecs.Entity, cfg *config.Config, h float64, active bool) {
	kin, mat, st := s.store.Get(e)
	bc := cfg.Boundary
	f, inside := ContainmentForce(kin.Pos, s.bounds, bc, active)
	if !inside {
		return
	}

	scale := bc.OuterScale
	if mat.Role == components.RoleCenter {
		scale = bc.CenterScale
	}
	f = clampNorm(r2.Scale(scale, f), cfg.Simulation.MaxForce)

	// Outward motion past the edge reflects with the point's restitution.
	if kin.Pos.X < 0 && kin.Vel.X < 0 || kin.Pos.X > s.bounds.Width && kin.Vel.X > 0 {
		kin.Vel.X = -kin.Vel.X * mat.Restitution
	}
	if kin.Pos.Y < 0 && kin.Vel.Y < 0 || kin.Pos.Y > s.bounds.Height && kin.Vel.Y > 0 {
		kin.Vel.Y = -kin.Vel.Y * mat.Restitution
	}

	damping := bc.IdleDamping
	if active {
		damping = bc.InteractDamping
	}
	kin.Vel = r2.Add(kin.Vel, r2.Scale(h, f))
	kin.Vel = r2.Scale(math.Pow(1-clamp01(damping), h), kin.Vel)
	// A point pinned onto an anchor in the margin is released so containment can move it.
	st.Wake()
}
