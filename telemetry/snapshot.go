package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/spatial/r2"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot holds the body state at one step for offline inspection.
type Snapshot struct {
	Version int    `json:"version"`
	Step    int64  `json:"step"`
	Shape   string `json:"shape"`
	Mode    string `json:"mode"`

	BoundsWidth  float64 `json:"bounds_width"`
	BoundsHeight float64 `json:"bounds_height"`

	Blend       float64 `json:"blend"`
	Recovery    float64 `json:"recovery"`
	Interacting bool    `json:"interacting"`

	Center PointState   `json:"center"`
	Outer  []PointState `json:"outer"`

	// Rest outline the drift statistics are measured against
	Reference []Vec `json:"reference"`
}

// PointState holds one point's position and velocity.
type PointState struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VelX   float64 `json:"vel_x"`
	VelY   float64 `json:"vel_y"`
	Pinned bool    `json:"pinned,omitempty"`
}

// Vec is the JSON form of r2.Vec.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPointState builds a PointState from position and velocity.
func NewPointState(pos, vel r2.Vec, pinned bool) PointState {
	return PointState{X: pos.X, Y: pos.Y, VelX: vel.X, VelY: vel.Y, Pinned: pinned}
}

// Pos returns the point position.
func (ps PointState) Pos() r2.Vec {
	return r2.Vec{X: ps.X, Y: ps.Y}
}

// Vel returns the point velocity.
func (ps PointState) Vel() r2.Vec {
	return r2.Vec{X: ps.VelX, Y: ps.VelY}
}

// ToVecs converts an outline to its JSON form.
func ToVecs(pts []r2.Vec) []Vec {
	out := make([]Vec, len(pts))
	for i, p := range pts {
		out[i] = Vec{X: p.X, Y: p.Y}
	}
	return out
}

// Outline returns the outer point positions.
func (s *Snapshot) Outline() []r2.Vec {
	out := make([]r2.Vec, len(s.Outer))
	for i, p := range s.Outer {
		out[i] = p.Pos()
	}
	return out
}

// ReferenceOutline returns the rest outline.
func (s *Snapshot) ReferenceOutline() []r2.Vec {
	out := make([]r2.Vec, len(s.Reference))
	for i, v := range s.Reference {
		out[i] = r2.Vec{X: v.X, Y: v.Y}
	}
	return out
}

// SaveSnapshot writes a snapshot to disk.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	name := fmt.Sprintf("snapshot_%d", snapshot.Step)
	if snapshot.Shape != "" {
		name = fmt.Sprintf("snapshot_%d_%s", snapshot.Step, snapshot.Shape)
	}
	name += ".json"

	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snapshot.Version != SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d, want %d", snapshot.Version, SnapshotVersion)
	}

	return &snapshot, nil
}
