package ecs

import (
	"fmt"

	"github.com/milk9111/camrig/ecs/component"
)

// SetParent attaches child under parent. A zero parent detaches.
func SetParent(w *World, child, parent Entity) error {
	if !IsAlive(w, child) {
		return component.ErrEntityNotAlive
	}
	if !parent.Valid() {
		Remove(w, child, component.ParentComponent.Kind())
		return nil
	}
	if !IsAlive(w, parent) {
		return fmt.Errorf("set parent: %w", component.ErrEntityNotAlive)
	}
	for p, ok := parent, true; ok; p, ok = ParentOf(w, p) {
		if p == child {
			return fmt.Errorf("set parent: %s would become its own ancestor", child)
		}
	}
	return Add(w, child, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(parent)})
}

// ParentOf returns the live parent of e.
func ParentOf(w *World, e Entity) (Entity, bool) {
	p, ok := Get(w, e, component.ParentComponent.Kind())
	if !ok {
		return 0, false
	}
	parent := Entity(p.Entity)
	if !IsAlive(w, parent) {
		return 0, false
	}
	return parent, true
}

// Children returns the direct children of e.
func Children(w *World, e Entity) []Entity {
	var out []Entity
	ForEach(w, component.ParentComponent.Kind(), func(child Entity, p *component.Parent) {
		if Entity(p.Entity) == e {
			out = append(out, child)
		}
	})
	return out
}

// Subtree returns e followed by all of its descendants, depth first.
func Subtree(w *World, e Entity) []Entity {
	if !IsAlive(w, e) {
		return nil
	}
	out := []Entity{e}
	for _, c := range Children(w, e) {
		out = append(out, Subtree(w, c)...)
	}
	return out
}
