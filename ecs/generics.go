package ecs

import (
	"fmt"

	"github.com/milk9111/pursuit/ecs/component"
)

// Add sets the component of the given kind on e, replacing any previous value.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("add component to %v: %w", e, component.ErrEntityNotAlive)
	}
	w.store(kind.ID(), true).set(e, value)
	return nil
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

// Get returns the stored pointer, so callers may mutate the component in place.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	s := w.store(kind.ID(), false)
	if s == nil {
		return nil, false
	}
	raw, ok := s.get(e)
	if !ok {
		return nil, false
	}
	v, ok := raw.(*T)
	return v, ok
}
