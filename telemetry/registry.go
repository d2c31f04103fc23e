package telemetry

// PhaseInfo describes a step phase for UI display.
type PhaseInfo struct {
	ID          string // Phase identifier used by PerfCollector
	Name        string // Display name
	Description string // What this phase does
	Category    string // Grouping (e.g., "interaction", "physics")
}

// PhaseRegistry holds metadata about all step phases.
// This keeps the perf panel and the collector using the same names.
type PhaseRegistry struct {
	phases []PhaseInfo
	byID   map[string]PhaseInfo
}

// NewPhaseRegistry creates a registry with all known phases.
func NewPhaseRegistry() *PhaseRegistry {
	reg := &PhaseRegistry{
		byID: make(map[string]PhaseInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds the step phases in execution order.
// Update this together with Phases.
func (r *PhaseRegistry) registerDefaults() {
	r.Register(PhaseInfo{ID: PhaseBlend, Name: "Blend", Description: "Smooths interaction and recovery gains", Category: "interaction"})
	r.Register(PhaseInfo{ID: PhaseStiffness, Name: "Stiffness", Description: "Softens links while handled", Category: "interaction"})
	r.Register(PhaseInfo{ID: PhaseConformance, Name: "Conformance", Description: "Pressure or anchor pull toward the rest shape", Category: "shape"})
	r.Register(PhaseInfo{ID: PhaseIntegrate, Name: "Integrate", Description: "Applies forces, solves links, derives velocity", Category: "physics"})
	r.Register(PhaseInfo{ID: PhaseBoundary, Name: "Boundary", Description: "Keeps points inside the bounds", Category: "physics"})
}

// Register adds a phase to the registry.
func (r *PhaseRegistry) Register(info PhaseInfo) {
	r.phases = append(r.phases, info)
	r.byID[info.ID] = info
}

// Get returns phase info by ID.
func (r *PhaseRegistry) Get(id string) (PhaseInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a phase ID.
// Falls back to the ID itself if not found.
func (r *PhaseRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered phases.
func (r *PhaseRegistry) All() []PhaseInfo {
	return r.phases
}

// ByCategory returns phases filtered by category.
func (r *PhaseRegistry) ByCategory(category string) []PhaseInfo {
	var result []PhaseInfo
	for _, info := range r.phases {
		if info.Category == category {
			result = append(result, info)
		}
	}
	return result
}

// Categories returns all unique categories.
func (r *PhaseRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, info := range r.phases {
		if !seen[info.Category] {
			seen[info.Category] = true
			cats = append(cats, info.Category)
		}
	}
	return cats
}

// IDs returns all phase IDs in registration order.
func (r *PhaseRegistry) IDs() []string {
	ids := make([]string, len(r.phases))
	for i, info := range r.phases {
		ids[i] = info.ID
	}
	return ids
}
