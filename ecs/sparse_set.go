package ecs

// SparseSet maps entity slots to component values. Values are packed in a
// dense slice so iteration touches no holes; removal swaps the last entry
// into the gap. Values are stored as any so one World can hold every kind.
type SparseSet struct {
	dense []slot
	index []int32 // entity id-1 -> position in dense, -1 when absent
}

type slot struct {
	entity Entity
	value  any
}

// pos returns e's position in dense, or -1.
func (s *SparseSet) pos(e Entity) int {
	if s == nil || !e.Valid() {
		return -1
	}
	i := int(e.id()) - 1
	if i >= len(s.index) {
		return -1
	}
	p := int(s.index[i])
	if p < 0 || s.dense[p].entity != e {
		return -1
	}
	return p
}

func (s *SparseSet) Has(e Entity) bool {
	return s.pos(e) >= 0
}

// Get returns the value stored for e, or nil.
func (s *SparseSet) Get(e Entity) any {
	p := s.pos(e)
	if p < 0 {
		return nil
	}
	return s.dense[p].value
}

// Set stores v for e, replacing any value held by an older generation of
// the same slot.
func (s *SparseSet) Set(e Entity, v any) {
	if s == nil || !e.Valid() {
		return
	}
	i := int(e.id()) - 1
	for len(s.index) <= i {
		s.index = append(s.index, -1)
	}
	if p := s.index[i]; p >= 0 {
		s.dense[p] = slot{entity: e, value: v}
		return
	}
	s.index[i] = int32(len(s.dense))
	s.dense = append(s.dense, slot{entity: e, value: v})
}

func (s *SparseSet) Remove(e Entity) bool {
	p := s.pos(e)
	if p < 0 {
		return false
	}
	last := len(s.dense) - 1
	moved := s.dense[last]
	s.dense[p] = moved
	s.index[moved.entity.id()-1] = int32(p)
	s.dense[last] = slot{}
	s.dense = s.dense[:last]
	s.index[e.id()-1] = -1
	return true
}

func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}

// Entities returns a copy of the stored entities in dense order.
func (s *SparseSet) Entities() []Entity {
	if s == nil || len(s.dense) == 0 {
		return nil
	}
	out := make([]Entity, len(s.dense))
	for i, sl := range s.dense {
		out[i] = sl.entity
	}
	return out
}
