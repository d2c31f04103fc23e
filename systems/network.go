package systems

import (
	"errors"
	"fmt"
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/blob/components"
	"github.com/pthm-cable/blob/config"
)

// MinRingPoints is the smallest ring a soft body can be built from.
const MinRingPoints = 3

// ErrInvalidShape is returned when a shape has fewer than MinRingPoints outer points.
var ErrInvalidShape = errors.New("invalid shape")

// ValidateOutline checks that an outline can form a ring.
func ValidateOutline(outer []r2.Vec) error {
	if len(outer) < MinRingPoints {
		return fmt.Errorf("%w: %d outer points, need at least %d", ErrInvalidShape, len(outer), MinRingPoints)
	}
	for i, p := range outer {
		if !finiteVec(p) {
			return fmt.Errorf("%w: outer point %d is not finite", ErrInvalidShape, i)
		}
	}
	return nil
}

// Centroid returns the mean of the given points.
func Centroid(points []r2.Vec) r2.Vec {
	var c r2.Vec
	if len(points) == 0 {
		return c
	}
	for _, p := range points {
		c = r2.Add(c, p)
	}
	return r2.Scale(1/float64(len(points)), c)
}

// RingOutline returns n points evenly spaced on a circle, starting at angle 0.
func RingOutline(center r2.Vec, radius float64, n int) []r2.Vec {
	if n <= 0 {
		return nil
	}
	out := make([]r2.Vec, n)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(n)
		out[i] = r2.Vec{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	return out
}

// BuildNetwork inserts a center point and one point per outer position into the
// store and links them. The center is the centroid of outer unless hasCenter is set.
// Nothing is inserted when the outline is invalid.
func BuildNetwork(store *PointStore, center r2.Vec, hasCenter bool, outer []r2.Vec, cfg *config.Config) (*components.SoftBody, error) {
	if err := ValidateOutline(outer); err != nil {
		return nil, err
	}
	if !hasCenter || !finiteVec(center) {
		center = Centroid(outer)
	}

	net := cfg.Network
	n := len(outer)
	body := &components.SoftBody{
		Outer:     make([]ecs.Entity, n),
		RestRadii: make([]float64, n),
	}

	body.Center = store.Add(center, components.Material{
		Role:        components.RoleCenter,
		Index:       -1,
		Damping:     clamp01(net.CenterDamping),
		Restitution: clamp01(net.Restitution),
	})
	for i, p := range outer {
		body.Outer[i] = store.Add(p, components.Material{
			Role:        components.RoleOuter,
			Index:       i,
			Damping:     clamp01(net.OuterDamping),
			Restitution: clamp01(net.Restitution),
		})
		body.RestRadii[i] = r2.Norm(r2.Sub(p, center))
	}

	link := func(i, j int, kind components.LinkKind, stiffness float64) {
		a, b := body.Outer[i], body.Outer[j%n]
		body.Ring = append(body.Ring, components.Constraint{
			A:                a,
			B:                b,
			Kind:             kind,
			RestLength:       r2.Norm(r2.Sub(outer[j%n], outer[i])),
			BaseStiffness:    clamp01(stiffness),
			AppliedStiffness: clamp01(stiffness),
		})
	}

	for i := 0; i < n; i++ {
		link(i, i+1, components.LinkNeighbor, net.Neighbor)
	}
	if n > 2 {
		for i := 0; i < n; i++ {
			link(i, i+2, components.LinkSkip2, net.Skip2)
		}
	}
	if n > 3 {
		for i := 0; i < n; i++ {
			link(i, i+3, components.LinkSkip3, net.Skip3)
		}
	}
	if n%2 == 0 {
		for i := 0; i < n; i++ {
			link(i, i+n/2, components.LinkDiameter, net.Diameter)
		}
	}

	body.Spokes = make([]components.Constraint, n)
	for i := range outer {
		body.Spokes[i] = components.Constraint{
			A:                body.Outer[i],
			B:                body.Center,
			Kind:             components.LinkSpoke,
			RestLength:       body.RestRadii[i],
			BaseStiffness:    clamp01(net.Spoke),
			AppliedStiffness: clamp01(net.Spoke),
		}
	}

	// Inserted points carry no motion from a previous shape.
	zeroMotion(store, body)

	return body, nil
}

// zeroMotion clears velocity, angular velocity, pending force and settle state of every point.
func zeroMotion(store *PointStore, body *components.SoftBody) {
	reset := func(e ecs.Entity) {
		kin, _, st := store.Get(e)
		kin.Vel = r2.Vec{}
		kin.Force = r2.Vec{}
		kin.AngularVelocity = 0
		kin.Prev = kin.Pos
		*st = components.Settle{}
	}
	reset(body.Center)
	for _, e := range body.Outer {
		reset(e)
	}
}

// DestroyNetwork removes every point of the body from the store and clears its lists.
func DestroyNetwork(store *PointStore, body *components.SoftBody) {
	if body == nil {
		return
	}
	for _, e := range body.Outer {
		store.Remove(e)
	}
	store.Remove(body.Center)
	body.Outer = nil
	body.Ring = nil
	body.Spokes = nil
	body.Anchors = nil
	body.RestRadii = nil
}
