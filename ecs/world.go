package ecs

import "github.com/milk9111/monsterfighter/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// Kind is satisfied by every component.ComponentKind and identifies a
// component table without its type parameter.
type Kind interface {
	ID() component.ComponentID
}

// World owns entities, component tables, the entity hierarchy and the
// per-tick delta time.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet

	parents  map[entityID]Entity
	children map[entityID][]Entity

	delta float64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:   make(map[component.ComponentID]*SparseSet),
		parents:  make(map[entityID]Entity),
		children: make(map[entityID][]Entity),
	}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e, detaches it from its parent and
// orphans its children. It returns false if e was not alive.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	id := e.id()
	for _, store := range w.stores {
		store.Remove(id)
	}
	detach(w, e)
	for _, child := range w.children[id] {
		delete(w.parents, child.id())
	}
	delete(w.children, id)
	return w.entities.destroy(e)
}

// DestroyRecursive destroys e and every descendant of e.
func DestroyRecursive(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, child := range Children(w, e) {
		DestroyRecursive(w, child)
	}
	return DestroyEntity(w, e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	for i := range w.entities.gen {
		if e, ok := w.entities.current(entityID(i + 1)); ok {
			out = append(out, e)
		}
	}
	return out
}

// SetDelta records the elapsed seconds for the current tick.
func (w *World) SetDelta(seconds float64) {
	if w == nil {
		return
	}
	if seconds < 0 {
		seconds = 0
	}
	w.delta = seconds
}

// Delta returns the elapsed seconds for the current tick.
func (w *World) Delta() float64 {
	if w == nil {
		return 0
	}
	return w.delta
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
