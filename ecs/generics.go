package ecs

import "github.com/milk9111/ptest/ecs/component"

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.store(kind.ID(), false).Remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.store(kind.ID(), false).Has(e)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	value, ok := w.store(kind.ID(), false).Get(e).(*T)
	return value, ok
}

// ForEach calls fn for every entity holding the component.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := w.store(kind.ID(), false)
	for _, e := range append([]Entity(nil), s.Entities()...) {
		if v, ok := s.Get(e).(*T); ok {
			fn(e, v)
		}
	}
}
