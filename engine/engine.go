// Package engine drives one particle-constraint soft body: construction,
// interaction input, and the fixed-order per-frame step.
package engine

import (
	"errors"
	"log/slog"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/blob/components"
	"github.com/pthm-cable/blob/config"
	"github.com/pthm-cable/blob/systems"
	"github.com/pthm-cable/blob/telemetry"
)

// Version is the engine interface version. Hosts compare it instead of
// probing for individual methods.
const Version = 1

var (
	// ErrInvalidShape is returned for rings or anchor sets with fewer than three points.
	ErrInvalidShape = systems.ErrInvalidShape
	// ErrNoBody is returned when an operation needs a live soft body.
	ErrNoBody = errors.New("no soft body")
	// ErrPointIndex is returned for a point index outside the body.
	ErrPointIndex = errors.New("point index out of range")
)

// SoftBodyID identifies one constructed shape instance.
type SoftBodyID uint32

// Mode is the active shape conformance strategy.
type Mode uint8

const (
	ModeNone Mode = iota
	ModeRing
	ModeAnchored
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeRing:
		return "ring"
	case ModeAnchored:
		return "anchored"
	}
	return "none"
}

// Options configures an engine.
type Options struct {
	Config *config.Config           // Nil uses embedded defaults
	Logger *slog.Logger             // Nil uses slog.Default()
	Perf   *telemetry.PerfCollector // Optional per-phase timing
}

// Engine owns one soft body and all state needed to step it.
// It is not safe for concurrent use.
type Engine struct {
	cfg    *config.Config
	logger *slog.Logger
	perf   *telemetry.PerfCollector

	store       *systems.PointStore
	blender     *systems.Blender
	conformance *systems.ConformanceSystem
	integration *systems.IntegrationSystem
	boundary    *systems.BoundarySystem
	pointers    PointerSet

	body   *components.SoftBody
	bodyID SoftBodyID
	nextID SoftBodyID
	steps  int64
}

// New creates an engine with no soft body and containment disabled.
func New(opts Options) *Engine {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	store := systems.NewPointStore()
	return &Engine{
		// The engine mutates its copy through the tuning hooks.
		cfg:         cfg.Clone(),
		logger:      logger,
		perf:        opts.Perf,
		store:       store,
		blender:     systems.NewBlender(cfg.Blend),
		conformance: systems.NewConformanceSystem(store),
		integration: systems.NewIntegrationSystem(store),
		boundary:    systems.NewBoundarySystem(store),
		pointers:    PointerSet{},
		nextID:      1,
	}
}

// Config returns the engine's working configuration.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// Mode returns the conformance strategy of the live body.
func (e *Engine) Mode() Mode {
	switch {
	case e.body == nil:
		return ModeNone
	case e.body.Anchored():
		return ModeAnchored
	default:
		return ModeRing
	}
}

// BodyID returns the id of the live body, or 0.
func (e *Engine) BodyID() SoftBodyID {
	if e.body == nil {
		return 0
	}
	return e.bodyID
}

// Body returns the live soft body for inspection. Callers must not mutate it.
func (e *Engine) Body() *components.SoftBody {
	return e.body
}

// PointCount returns the number of outer points of the live body.
func (e *Engine) PointCount() int {
	if e.body == nil {
		return 0
	}
	return len(e.body.Outer)
}

// Blend returns the smoothed interaction blend.
func (e *Engine) Blend() float64 {
	return e.blender.Blend
}

// Recovery returns the post-release recovery gain.
func (e *Engine) Recovery() float64 {
	return e.blender.Recovery
}

// Interacting returns the raw interaction flag.
func (e *Engine) Interacting() bool {
	return e.blender.Active
}

// Steps returns the number of completed steps.
func (e *Engine) Steps() int64 {
	return e.steps
}

// Anchors returns a copy of the target anchors, nil for ring shapes.
func (e *Engine) Anchors() []r2.Vec {
	if e.body == nil || !e.body.Anchored() {
		return nil
	}
	out := make([]r2.Vec, len(e.body.Anchors))
	copy(out, e.body.Anchors)
	return out
}
