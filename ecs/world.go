package ecs

import (
	"fmt"

	"github.com/milk9111/camrig/ecs/component"
)

// World owns entities, their component stores and the per-tick event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	clock    clock
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e.slot())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	for id := slot(1); int(id) <= len(w.entities.gens); id++ {
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// AddComponent stores value under the given kind, replacing any previous value.
func (w *World) AddComponent(e Entity, kind component.AnyKind, value any) error {
	if w == nil {
		return fmt.Errorf("ecs: add component: world is nil")
	}
	if kind == nil || kind.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("ecs: add %s to %s: %w", component.KindName(kind.ID()), e, component.ErrNilComponent)
	}
	if !w.entities.isAlive(e) {
		return fmt.Errorf("ecs: add %s to %s: %w", component.KindName(kind.ID()), e, component.ErrEntityNotAlive)
	}
	w.store(kind.ID(), true).Set(e.slot(), value)
	return nil
}

// GetComponent returns the raw stored value.
func (w *World) GetComponent(e Entity, kind component.AnyKind) (any, bool) {
	if w == nil || kind == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	store := w.store(kind.ID(), false)
	if !store.Has(e.slot()) {
		return nil, false
	}
	return store.Get(e.slot()), true
}

// HasComponent reports whether e carries the kind.
func (w *World) HasComponent(e Entity, kind component.AnyKind) bool {
	_, ok := w.GetComponent(e, kind)
	return ok
}

// RemoveComponent drops the kind from e.
func (w *World) RemoveComponent(e Entity, kind component.AnyKind) bool {
	if w == nil || kind == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(e.slot())
}

// Query returns the live entities carrying every kind, in the dense order of
// the smallest store.
func (w *World) Query(kinds ...component.AnyKind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s == nil {
			return nil
		}
		sets = append(sets, s)
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	var out []Entity
	for _, id := range smallest.Slots() {
		match := true
		for _, s := range sets {
			if !s.Has(id) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first entity carrying kind.
func (w *World) First(kind component.AnyKind) (Entity, bool) {
	ents := w.Query(kind)
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
