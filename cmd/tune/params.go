// Package main provides CMA-ES tuning of the idle soft body parameters.
package main

import (
	"github.com/pthm-cable/blob/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable parameters.
// Interaction gains are left alone; only the resting response is searched.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Network
			{Name: "neighbor", Path: "network.neighbor", Min: 0.35, Max: 0.9, Default: 0.5},
			{Name: "spoke", Path: "network.spoke", Min: 0.05, Max: 0.6, Default: 0.2},
			{Name: "outer_damping", Path: "network.outer_damping", Min: 0.02, Max: 0.4, Default: 0.1},
			{Name: "center_damping", Path: "network.center_damping", Min: 0.01, Max: 0.3, Default: 0.05},
			// Conformance
			{Name: "pressure_idle_gain", Path: "pressure.idle_gain", Min: 0.005, Max: 0.06, Default: 0.02},
			{Name: "anchor_strength", Path: "anchor.strength", Min: 0.005, Max: 0.1, Default: 0.03},
			{Name: "anchor_idle_damping", Path: "anchor.idle_damping", Min: 0.05, Max: 0.6, Default: 0.25},
			// Blend
			{Name: "idle_tau_ms", Path: "blend.idle_tau_ms", Min: 200, Max: 3000, Default: 900},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)
	i := 0

	cfg.Network.Neighbor = clamped[i]; i++
	cfg.Network.Spoke = clamped[i]; i++
	cfg.Network.OuterDamping = clamped[i]; i++
	cfg.Network.CenterDamping = clamped[i]; i++

	cfg.Pressure.IdleGain = clamped[i]; i++
	cfg.Anchor.Strength = clamped[i]; i++
	cfg.Anchor.IdleDamping = clamped[i]; i++

	cfg.Blend.IdleTauMs = clamped[i]
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Network.Neighbor,
		cfg.Network.Spoke,
		cfg.Network.OuterDamping,
		cfg.Network.CenterDamping,
		cfg.Pressure.IdleGain,
		cfg.Anchor.Strength,
		cfg.Anchor.IdleDamping,
		cfg.Blend.IdleTauMs,
	}
}
