package ecs

// SparseSet maps entity slots to component values. Values live densely so
// queries walk a packed slice; sparse holds dense index + 1, zero meaning
// absent.
type SparseSet struct {
	slots  []slot
	values []any
	sparse []uint32
}

func (s *SparseSet) index(id slot) (int, bool) {
	if s == nil || id == 0 || int(id) > len(s.sparse) {
		return 0, false
	}
	i := s.sparse[id-1]
	return int(i) - 1, i != 0
}

func (s *SparseSet) Has(id slot) bool {
	_, ok := s.index(id)
	return ok
}

func (s *SparseSet) Get(id slot) any {
	if i, ok := s.index(id); ok {
		return s.values[i]
	}
	return nil
}

// Set inserts or replaces the value for id.
func (s *SparseSet) Set(id slot, v any) {
	if id == 0 {
		return
	}
	if i, ok := s.index(id); ok {
		s.values[i] = v
		return
	}
	if grow := int(id) - len(s.sparse); grow > 0 {
		s.sparse = append(s.sparse, make([]uint32, grow)...)
	}
	s.slots = append(s.slots, id)
	s.values = append(s.values, v)
	s.sparse[id-1] = uint32(len(s.slots))
}

// Remove swaps the last dense entry into the hole.
func (s *SparseSet) Remove(id slot) bool {
	i, ok := s.index(id)
	if !ok {
		return false
	}
	last := len(s.slots) - 1
	moved := s.slots[last]
	s.slots[i], s.values[i] = moved, s.values[last]
	s.sparse[moved-1] = uint32(i + 1)
	s.values[last] = nil
	s.slots, s.values = s.slots[:last], s.values[:last]
	s.sparse[id-1] = 0
	return true
}

func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.slots)
}

func (s *SparseSet) Slots() []slot {
	if s == nil {
		return nil
	}
	return s.slots
}
