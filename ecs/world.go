package ecs

import "github.com/milk9111/moodsprites/ecs/component"

// System updates a world each tick.
type System interface {
	Update(w *World)
}

type componentStore interface {
	has(e Entity) bool
	remove(e Entity) bool
	entities() []Entity
	len() int
}

// World owns entities, their components and the per-tick event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]componentStore)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// First returns any live entity that has the component.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil || kind == nil {
		return 0, false
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		return 0, false
	}
	for _, e := range s.entities() {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// Query returns live entities that have every listed component.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]componentStore, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate smallest set
	smallest := 0
	for i, s := range sets {
		if s.len() < sets[smallest].len() {
			smallest = i
		}
	}
	out := make([]Entity, 0, sets[smallest].len())
	for _, e := range sets[smallest].entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		match := true
		for i, s := range sets {
			if i != smallest && !s.has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

func Entities(w *World) []Entity {
	return w.Entities()
}
