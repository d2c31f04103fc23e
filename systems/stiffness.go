package systems

import (
	"github.com/pthm-cable/blob/components"
	"github.com/pthm-cable/blob/config"
)

// StiffnessScales returns the ring and spoke stiffness multipliers for a softening amount t.
func StiffnessScales(t float64, cfg config.SofteningConfig) (ring, spoke float64) {
	t = clamp01(t)
	return lerp(1, clamp01(cfg.Ring), t), lerp(1, clamp01(cfg.Spoke), t)
}

// RescaleStiffness recomputes applied stiffness from base stiffness.
// Base values are never overwritten, so repeated calls do not compound.
func RescaleStiffness(body *components.SoftBody, t float64, cfg config.SofteningConfig) {
	if body == nil {
		return
	}
	ring, spoke := StiffnessScales(t, cfg)
	for i := range body.Ring {
		c := &body.Ring[i]
		c.AppliedStiffness = c.BaseStiffness * ring
	}
	for i := range body.Spokes {
		c := &body.Spokes[i]
		c.AppliedStiffness = c.BaseStiffness * spoke
	}
}
