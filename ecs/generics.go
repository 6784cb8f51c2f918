package ecs

import "github.com/milk9111/moodsprites/ecs/component"

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]componentStore)
	}
	if s, ok := w.stores[kind.ID()]; ok {
		typed, _ := s.(*sparseSet[T])
		return typed
	}
	if !create {
		return nil
	}
	s := &sparseSet[T]{}
	w.stores[kind.ID()] = s
	return s
}

// Add attaches or replaces the component value for e.
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
	storeFor(w, kind, true).set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	s := storeFor(w, kind, false)
	if s == nil {
		return false
	}
	return s.remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	s := storeFor(w, kind, false)
	return s != nil && w.IsAlive(e) && s.has(e)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	s := storeFor(w, kind, false)
	if s == nil || !w.IsAlive(e) {
		return nil, false
	}
	return s.get(e)
}

// ForEach calls fn for every live entity with the component. fn may add,
// remove or destroy entities; iteration runs over a snapshot.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := storeFor(w, kind, false)
	if s == nil || fn == nil {
		return
	}
	snapshot := append([]Entity(nil), s.entities()...)
	for _, e := range snapshot {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if fn == nil {
		return
	}
	for _, e := range w.Query(ka, kb) {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if fn == nil {
		return
	}
	for _, e := range w.Query(ka, kb, kc) {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		c, ok := Get(w, e, kc)
		if !ok {
			continue
		}
		fn(e, a, b, c)
	}
}
