// Package config provides configuration loading and access for the blob engine.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all engine and host configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Simulation SimulationConfig `yaml:"simulation"`
	Network    NetworkConfig    `yaml:"network"`
	Blend      BlendConfig      `yaml:"blend"`
	Softening  SofteningConfig  `yaml:"softening"`
	Pressure   PressureConfig   `yaml:"pressure"`
	Anchor     AnchorConfig     `yaml:"anchor"`
	Boundary   BoundaryConfig   `yaml:"boundary"`
	Settle     SettleConfig     `yaml:"settle"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Host       HostConfig       `yaml:"host"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings for the graphical host.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SimulationConfig holds integration parameters.
type SimulationConfig struct {
	FrameMs    float64 `yaml:"frame_ms"`    // Reference frame duration; gains are per reference frame
	MaxStepMs  float64 `yaml:"max_step_ms"` // Timestep clamp applied before integration
	Iterations int     `yaml:"iterations"`  // Constraint projection passes per step
	MaxForce   float64 `yaml:"max_force"`   // Force magnitude clamp (per reference frame)
	MaxSpeed   float64 `yaml:"max_speed"`   // Velocity magnitude clamp (units per reference frame)
}

// NetworkConfig holds constraint network stiffness and point material defaults.
type NetworkConfig struct {
	Neighbor      float64 `yaml:"neighbor"`       // s1, offset 1
	Skip2         float64 `yaml:"skip2"`          // s2 < s1
	Skip3         float64 `yaml:"skip3"`          // s3 < s2
	Diameter      float64 `yaml:"diameter"`       // s4, only for even rings
	Spoke         float64 `yaml:"spoke"`          // s5, outer-to-center
	OuterDamping  float64 `yaml:"outer_damping"`  // Linear damping per reference frame, outer points
	CenterDamping float64 `yaml:"center_damping"` // Linear damping per reference frame, center point
	Restitution   float64 `yaml:"restitution"`    // Boundary restitution
}

// BlendConfig holds the interaction smoothing time constants.
type BlendConfig struct {
	ActiveTauMs float64 `yaml:"active_tau_ms"`
	IdleTauMs   float64 `yaml:"idle_tau_ms"`
	RecoveryMs  float64 `yaml:"recovery_ms"` // Time for recovery gain to ramp 0 -> 1 after release
}

// SofteningConfig holds the stiffness scale reached under full interaction.
type SofteningConfig struct {
	Ring  float64 `yaml:"ring"`
	Spoke float64 `yaml:"spoke"`
}

// PressureConfig holds radial pressure gains for ring shapes.
type PressureConfig struct {
	IdleGain         float64 `yaml:"idle_gain"`
	InteractGain     float64 `yaml:"interact_gain"`
	RecoverGain      float64 `yaml:"recover_gain"`      // Capped below InteractGain
	OverstretchRatio float64 `yaml:"overstretch_ratio"` // Clamp kicks in past ratio * rest radius
	OverstretchGain  float64 `yaml:"overstretch_gain"`
}

// AnchorConfig holds anchor attraction parameters for traced outlines.
type AnchorConfig struct {
	Strength         float64 `yaml:"strength"`          // Idle pull
	InteractStrength float64 `yaml:"interact_strength"` // Pull while handled
	IdleDamping      float64 `yaml:"idle_damping"`
	InteractDamping  float64 `yaml:"interact_damping"`
	SnapDistance     float64 `yaml:"snap_distance"`
}

// BoundaryConfig holds containment margins and gains.
type BoundaryConfig struct {
	MarginX         float64 `yaml:"margin_x"`
	MarginY         float64 `yaml:"margin_y"`
	IdleGain        float64 `yaml:"idle_gain"`
	InteractGain    float64 `yaml:"interact_gain"`
	IdleDamping     float64 `yaml:"idle_damping"`
	InteractDamping float64 `yaml:"interact_damping"`
	OuterScale      float64 `yaml:"outer_scale"`
	CenterScale     float64 `yaml:"center_scale"`
}

// SettleConfig holds the sleep thresholds used to suppress residual jitter.
type SettleConfig struct {
	Enabled     bool    `yaml:"enabled"`
	SleepSpeed  float64 `yaml:"sleep_speed"`
	WakeSpeed   float64 `yaml:"wake_speed"`
	SleepForce  float64 `yaml:"sleep_force"`
	SleepFrames int     `yaml:"sleep_frames"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"` // Steps per settle stats window
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// HostConfig holds the initial shape and pointer gains of the bundled hosts.
type HostConfig struct {
	Shape          string  `yaml:"shape"`           // ring, square, star, rose, heart
	Points         int     `yaml:"points"`          // Outer point count
	RadiusFraction float64 `yaml:"radius_fraction"` // Shape radius relative to the shorter screen side
	PickRadius     float64 `yaml:"pick_radius"`     // Max cursor distance to grab a point
	DragGain       float64 `yaml:"drag_gain"`       // Force per unit of cursor offset
	DragDamping    float64 `yaml:"drag_damping"`    // Force per unit of grabbed point velocity
	PinchGain      float64 `yaml:"pinch_gain"`      // Inward force per unit of radius while pinching
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	InvFrameMs float64 // 1 / Simulation.FrameMs
	ScreenW    float64
	ScreenH    float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// computeDerived calculates values derived from loaded config and repairs
// values that would make the integrator ill-defined.
func (c *Config) computeDerived() {
	if c.Simulation.FrameMs <= 0 {
		c.Simulation.FrameMs = 1000.0 / 60.0
	}
	if c.Simulation.MaxStepMs <= 0 {
		c.Simulation.MaxStepMs = 32
	}
	if c.Simulation.Iterations < 1 {
		c.Simulation.Iterations = 1
	}
	if c.Pressure.OverstretchRatio < 1 {
		c.Pressure.OverstretchRatio = 1
	}
	// Recovery push must stay below the interacting push.
	if c.Pressure.RecoverGain > c.Pressure.InteractGain {
		c.Pressure.RecoverGain = c.Pressure.InteractGain
	}

	if c.Host.Points < 3 {
		c.Host.Points = 3
	}
	if c.Host.Shape == "" {
		c.Host.Shape = "ring"
	}

	c.Derived.InvFrameMs = 1.0 / c.Simulation.FrameMs
	c.Derived.ScreenW = float64(c.Screen.Width)
	c.Derived.ScreenH = float64(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
