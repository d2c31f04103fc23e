// Package systems contains the soft body force and integration systems.
package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/blob/components"
)

// PointStore owns the mass points of one engine as ECS entities.
type PointStore struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Kinematics, components.Material, components.Settle]
	filter *ecs.Filter3[components.Kinematics, components.Material, components.Settle]
	count  int
}

// NewPointStore creates a point store backed by a fresh ECS world.
func NewPointStore() *PointStore {
	world := ecs.NewWorld()
	return &PointStore{
		world:  world,
		mapper: ecs.NewMap3[components.Kinematics, components.Material, components.Settle](world),
		filter: ecs.NewFilter3[components.Kinematics, components.Material, components.Settle](world),
	}
}

// Add inserts a resting mass point at pos.
func (s *PointStore) Add(pos r2.Vec, mat components.Material) ecs.Entity {
	kin := components.Kinematics{Pos: pos, Prev: pos}
	settle := components.Settle{}
	s.count++
	return s.mapper.NewEntity(&kin, &mat, &settle)
}

// Get returns the components of a point.
func (s *PointStore) Get(e ecs.Entity) (*components.Kinematics, *components.Material, *components.Settle) {
	return s.mapper.Get(e)
}

// Pos returns the position of a point.
func (s *PointStore) Pos(e ecs.Entity) r2.Vec {
	kin, _, _ := s.mapper.Get(e)
	return kin.Pos
}

// Alive reports whether the entity is a live point.
func (s *PointStore) Alive(e ecs.Entity) bool {
	return s.world.Alive(e)
}

// Remove deletes a point.
func (s *PointStore) Remove(e ecs.Entity) {
	if !s.world.Alive(e) {
		return
	}
	s.world.RemoveEntity(e)
	s.count--
}

// Len returns the number of live points.
func (s *PointStore) Len() int {
	return s.count
}

// Each calls fn for every live point in storage order.
func (s *PointStore) Each(fn func(kin *components.Kinematics, mat *components.Material, st *components.Settle)) {
	query := s.filter.Query()
	for query.Next() {
		kin, mat, st := query.Get()
		fn(kin, mat, st)
	}
}
