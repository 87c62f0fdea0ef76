package ecs

import "github.com/milk9111/ptest/ecs/component"

// World owns entities, component storage, the frame clock and the physics
// space.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue

	deltaSeconds float64
	frame        uint64

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes all components of e, drops its physics shape and
// frees its slot. It reports whether e was alive.
func DestroyEntity(w *World, e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	if pb, ok := Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		w.physicsWorld.Remove(pb.Shape)
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	return w.entities.all()
}

func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// Query returns the live entities that have every given component kind.
func (w *World) Query(kinds ...component.KindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate the smallest set
	smallest := 0
	for i, s := range sets {
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}
	out := make([]Entity, 0, sets[smallest].Len())
outer:
	for _, e := range sets[smallest].Entities() {
		for i, s := range sets {
			if i != smallest && !s.Has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// First returns the first entity matching the kinds.
func (w *World) First(kinds ...component.KindID) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Advance starts a new frame of dt seconds.
func (w *World) Advance(dt float64) {
	if w == nil {
		return
	}
	w.deltaSeconds = dt
	w.frame++
}

// DeltaSeconds is the elapsed time of the current frame.
func (w *World) DeltaSeconds() float64 {
	if w == nil {
		return 0
	}
	return w.deltaSeconds
}

// Frame is the number of frames advanced so far.
func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.frame
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}
