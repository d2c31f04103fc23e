// Package components defines ECS components for the soft body.
package components

import "gonum.org/v1/gonum/spatial/r2"

// Role distinguishes the center mass from ring points.
type Role uint8

const (
	RoleOuter Role = iota
	RoleCenter
)

// String returns the role name.
func (r Role) String() string {
	if r == RoleCenter {
		return "center"
	}
	return "outer"
}

// Kinematics holds a mass point's motion state.
// Velocity and force are expressed per reference frame.
type Kinematics struct {
	Pos             r2.Vec  `inspect:"label,fmt:%.1f"`
	Prev            r2.Vec  `inspect:"skip"` // Position at the start of the current step
	Vel             r2.Vec  `inspect:"label,fmt:%.3f"`
	Force           r2.Vec  `inspect:"skip"` // Accumulated force, consumed by the next integration
	AngularVelocity float64 `inspect:"label,fmt:%.3f"`
}

// Material holds per-point response coefficients.
type Material struct {
	Role        Role    `inspect:"label"`
	Index       int     `inspect:"label"` // Ring index for outer points, -1 for the center
	Damping     float64 `inspect:"bar"`   // Linear damping per reference frame, [0,1]
	Restitution float64 `inspect:"bar"`   // Boundary restitution, [0,1]
}

// Settle tracks the settling state of a point.
type Settle struct {
	Asleep       bool `inspect:"bool"`
	StillFrames  int  `inspect:"label"`
	Pinned       bool `inspect:"bool"` // Snapped onto its anchor; immovable until disturbed
	ForcePending bool `inspect:"skip"` // External force injected since the last step
}

// Wake clears sleeping and pinning.
func (s *Settle) Wake() {
	s.Asleep = false
	s.StillFrames = 0
	s.Pinned = false
}
