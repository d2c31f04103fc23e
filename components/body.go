package components

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"
)

// LinkKind identifies the layer a constraint belongs to.
type LinkKind uint8

const (
	LinkNeighbor LinkKind = iota
	LinkSkip2
	LinkSkip3
	LinkDiameter
	LinkSpoke
)

// String returns the link kind name.
func (k LinkKind) String() string {
	switch k {
	case LinkNeighbor:
		return "neighbor"
	case LinkSkip2:
		return "skip2"
	case LinkSkip3:
		return "skip3"
	case LinkDiameter:
		return "diameter"
	case LinkSpoke:
		return "spoke"
	}
	return "unknown"
}

// Constraint is an elastic link between two mass points.
// Endpoints never change after creation.
type Constraint struct {
	A, B             ecs.Entity
	Kind             LinkKind
	RestLength       float64
	BaseStiffness    float64 // Recorded at creation, never rescaled
	AppliedStiffness float64 // BaseStiffness * current scale
}

// SoftBody is one center mass plus an ordered ring of outer masses.
// Ring order defines both link topology and outline winding.
type SoftBody struct {
	Center    ecs.Entity
	Outer     []ecs.Entity
	Ring      []Constraint // Neighbor, skip and diameter links
	Spokes    []Constraint // One per outer point, outer -> center
	Anchors   []r2.Vec     // Nil for ring shapes
	RestRadii []float64    // Initial distance of each outer point to the center
}

// Anchored reports whether the body conforms to explicit anchors.
func (b *SoftBody) Anchored() bool {
	return len(b.Anchors) > 0
}

// CountKind returns the number of ring constraints of the given kind.
func (b *SoftBody) CountKind(kind LinkKind) int {
	if kind == LinkSpoke {
		return len(b.Spokes)
	}
	n := 0
	for i := range b.Ring {
		if b.Ring[i].Kind == kind {
			n++
		}
	}
	return n
}
