package ecs

// sparseSet is a cache-friendly storage for one component type keyed by
// entity slot id. Dense entries remember the full Entity so stale handles
// from a recycled slot never match.
type sparseSet[T any] struct {
	denseEntities []Entity
	denseValues   []*T
	sparse        []int
}

func (s *sparseSet[T]) index(e Entity) (int, bool) {
	id := int(e.id())
	if id <= 0 || id-1 >= len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.denseEntities) || s.denseEntities[idx] != e {
		return 0, false
	}
	return idx, true
}

func (s *sparseSet[T]) has(e Entity) bool {
	_, ok := s.index(e)
	return ok
}

func (s *sparseSet[T]) get(e Entity) (*T, bool) {
	idx, ok := s.index(e)
	if !ok {
		return nil, false
	}
	return s.denseValues[idx], true
}

func (s *sparseSet[T]) set(e Entity, v *T) {
	id := int(e.id())
	for id-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if idx := s.sparse[id-1]; idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx].id() == e.id() {
		s.denseEntities[idx] = e
		s.denseValues[idx] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseEntities) - 1
}

func (s *sparseSet[T]) remove(e Entity) bool {
	idx, ok := s.index(e)
	if !ok {
		return false
	}
	last := len(s.denseEntities) - 1
	moved := s.denseEntities[last]

	s.denseEntities[idx] = moved
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[moved.id()-1] = idx

	s.denseEntities[last] = 0
	s.denseValues[last] = nil
	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[e.id()-1] = -1
	return true
}

func (s *sparseSet[T]) entities() []Entity {
	return s.denseEntities
}

func (s *sparseSet[T]) len() int {
	return len(s.denseEntities)
}
