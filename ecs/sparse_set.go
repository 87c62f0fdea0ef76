package ecs

// SparseSet is a cache-friendly storage for components keyed by entity slot.
// Values are stored as `any`; the typed helpers in generics.go do the casts.
type SparseSet struct {
	denseEntities []Entity
	denseValues   []any
	sparse        []int
}

func (s *SparseSet) index(e Entity) (int, bool) {
	if s == nil {
		return 0, false
	}
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

// Has returns true if the entity exists in the set.
func (s *SparseSet) Has(e Entity) bool {
	_, ok := s.index(e)
	return ok
}

// Get returns the component for e, or nil.
func (s *SparseSet) Get(e Entity) any {
	idx, ok := s.index(e)
	if !ok {
		return nil
	}
	return s.denseValues[idx]
}

// Set inserts or updates a component for e.
func (s *SparseSet) Set(e Entity, v any) {
	if s == nil || !e.Valid() {
		return
	}
	id := int(e.id())
	for id-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if idx := s.sparse[id-1]; idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx].id() == e.id() {
		// same slot, possibly a recycled generation
		s.denseEntities[idx] = e
		s.denseValues[idx] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseEntities) - 1
}

// Remove deletes the component for e if present.
func (s *SparseSet) Remove(e Entity) bool {
	idx, ok := s.index(e)
	if !ok {
		return false
	}
	last := len(s.denseEntities) - 1
	moved := s.denseEntities[last]

	s.denseEntities[idx] = moved
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[moved.id()-1] = idx

	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[e.id()-1] = -1
	return true
}

// Entities returns the dense entity list.
func (s *SparseSet) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.denseEntities
}

// Len returns the number of stored components.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}
