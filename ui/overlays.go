package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayPoints    OverlayID = "points"
	OverlayLinks     OverlayID = "links"
	OverlaySpokes    OverlayID = "spokes"
	OverlayAnchors   OverlayID = "anchors"
	OverlayVelocity  OverlayID = "velocity"
	OverlayBounds    OverlayID = "bounds"
	OverlayPerf      OverlayID = "perf"
	OverlayFill      OverlayID = "fill"
	OverlayWireframe OverlayID = "wireframe"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID          OverlayID   // Unique identifier
	Name        string      // Display name
	Description string      // What this overlay shows
	Key         int32       // Keyboard key to toggle (0 = no key)
	KeyLabel    string      // Key label for display (e.g., "P", "L")
	Category    string      // Grouping (e.g., "visual", "debug")
	Exclusive   []OverlayID // Other overlays to disable when this is enabled
	Default     bool        // Enabled at registration
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
	order       []OverlayID // Maintains insertion order for display
}

// NewOverlayRegistry creates a registry with default overlays.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds standard overlays.
func (r *OverlayRegistry) registerDefaults() {
	// Visual overlays
	r.Register(OverlayDescriptor{
		ID:          OverlayFill,
		Name:        "Filled Body",
		Description: "Fill the outline from the center point",
		Key:         rl.KeyF,
		KeyLabel:    "F",
		Category:    "visual",
		Exclusive:   []OverlayID{OverlayWireframe},
		Default:     true,
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayWireframe,
		Name:        "Wireframe",
		Description: "Draw the outline only",
		Key:         rl.KeyW,
		KeyLabel:    "W",
		Category:    "visual",
		Exclusive:   []OverlayID{OverlayFill},
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayPoints,
		Name:        "Points",
		Description: "Show outer points, pinned points highlighted",
		Key:         rl.KeyP,
		KeyLabel:    "P",
		Category:    "visual",
	})

	// Structure overlays
	r.Register(OverlayDescriptor{
		ID:          OverlayLinks,
		Name:        "Ring Links",
		Description: "Show adjacency, skip and diameter links",
		Key:         rl.KeyL,
		KeyLabel:    "L",
		Category:    "structure",
	})

	r.Register(OverlayDescriptor{
		ID:          OverlaySpokes,
		Name:        "Spokes",
		Description: "Show center-to-outer links",
		Key:         rl.KeyK,
		KeyLabel:    "K",
		Category:    "structure",
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayAnchors,
		Name:        "Anchors",
		Description: "Show anchor targets of anchored shapes",
		Key:         rl.KeyA,
		KeyLabel:    "A",
		Category:    "structure",
	})

	// Debug overlays
	r.Register(OverlayDescriptor{
		ID:          OverlayVelocity,
		Name:        "Velocity",
		Description: "Show per-point velocity vectors",
		Key:         rl.KeyV,
		KeyLabel:    "V",
		Category:    "debug",
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayBounds,
		Name:        "Bounds",
		Description: "Show the containment rectangle",
		Key:         rl.KeyB,
		KeyLabel:    "B",
		Category:    "debug",
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayPerf,
		Name:        "Perf Panel",
		Description: "Show per-phase step timing",
		Key:         rl.KeyF3,
		KeyLabel:    "F3",
		Category:    "debug",
	})
}

// Register adds an overlay to the registry.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.order = append(r.order, desc.ID)
	r.enabled[desc.ID] = desc.Default
}

// Toggle switches an overlay on/off and handles exclusivity.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	newState := !r.enabled[id]
	r.SetEnabled(id, newState)
	return newState
}

// SetEnabled explicitly sets an overlay's state.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	desc, ok := r.byID[id]
	if !ok {
		return
	}

	r.enabled[id] = enabled

	// If enabling, disable exclusive overlays
	if enabled {
		for _, excl := range desc.Exclusive {
			r.enabled[excl] = false
		}
	}
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// Get returns an overlay descriptor by ID.
func (r *OverlayRegistry) Get(id OverlayID) (OverlayDescriptor, bool) {
	desc, ok := r.byID[id]
	return desc, ok
}

// All returns all registered overlays in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// ByCategory returns overlays filtered by category.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var result []OverlayDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			result = append(result, desc)
		}
	}
	return result
}

// Categories returns all unique categories in order.
func (r *OverlayRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, desc := range r.descriptors {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// HandleKeyPress checks if a key corresponds to an overlay toggle.
// Returns the overlay ID and new state if a toggle occurred.
func (r *OverlayRegistry) HandleKeyPress(key int32) (OverlayID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key == key {
			newState := r.Toggle(desc.ID)
			return desc.ID, newState, true
		}
	}
	return "", false, false
}

// EnabledOverlays returns a list of currently enabled overlay IDs.
func (r *OverlayRegistry) EnabledOverlays() []OverlayID {
	var result []OverlayID
	for _, id := range r.order {
		if r.enabled[id] {
			result = append(result, id)
		}
	}
	return result
}
