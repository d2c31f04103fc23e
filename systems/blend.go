package systems

import (
	"math"

	"github.com/pthm-cable/blob/config"
)

// Blender smooths the raw interaction flag into the interaction blend and
// the post-release recovery gain.
type Blender struct {
	Active   bool
	Blend    float64 // Smoothed interaction, [0,1]
	Recovery float64 // Time since release, ramped to [0,1]

	cfg config.BlendConfig
}

// NewBlender returns an idle, fully recovered blender.
func NewBlender(cfg config.BlendConfig) *Blender {
	return &Blender{Recovery: 1, cfg: cfg}
}

// SetActive records the raw interaction flag. Recovery drops to zero the
// instant interaction resumes.
func (b *Blender) SetActive(active bool) {
	b.Active = active
	if active {
		b.Recovery = 0
	}
}

// Advance moves both signals forward by dt milliseconds.
func (b *Blender) Advance(dtMs float64) {
	if !finite(dtMs) || dtMs < 0 {
		dtMs = 0
	}

	target, tau := 0.0, b.cfg.IdleTauMs
	if b.Active {
		target, tau = 1.0, b.cfg.ActiveTauMs
	}
	alpha := 1.0
	if tau > 0 {
		alpha = 1 - math.Exp(-dtMs/tau)
	}
	b.Blend = clamp01(b.Blend + (target-b.Blend)*alpha)

	if b.Active {
		b.Recovery = 0
		return
	}
	if b.cfg.RecoveryMs <= 0 {
		b.Recovery = 1
		return
	}
	b.Recovery = clamp01(b.Recovery + dtMs/b.cfg.RecoveryMs)
}

// Softening returns how far constraint stiffness should move toward its
// softened value: the blend while active, 1 - recovery^1.5 while idle.
func (b *Blender) Softening() float64 {
	if b.Active {
		return b.Blend
	}
	return clamp01(1 - math.Pow(b.Recovery, 1.5))
}
