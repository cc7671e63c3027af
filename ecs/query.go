package ecs

import "github.com/milk9111/camrig/ecs/component"

// FindByName returns the first live entity whose Name matches.
func FindByName(w *World, name string) (Entity, bool) {
	if w == nil || name == "" {
		return 0, false
	}
	for _, e := range w.Query(component.NameComponent.Kind()) {
		n, ok := Get(w, e, component.NameComponent.Kind())
		if ok && n.Value == name {
			return e, true
		}
	}
	return 0, false
}

// NameOf returns the entity's Name, or its numeric handle.
func NameOf(w *World, e Entity) string {
	if n, ok := Get(w, e, component.NameComponent.Kind()); ok && n.Value != "" {
		return n.Value
	}
	return e.String()
}
