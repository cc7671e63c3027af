package ecs

// entityStore hands out slots and bumps a slot's generation on destroy so
// stale handles stop resolving. Slots start at 1.
type entityStore struct {
	gens  []uint32
	alive []bool
	free  []slot
	count int
}

func (s *entityStore) create() Entity {
	var id slot
	if n := len(s.free); n > 0 {
		id, s.free = s.free[n-1], s.free[:n-1]
	} else {
		s.gens = append(s.gens, 0)
		s.alive = append(s.alive, false)
		id = slot(len(s.gens))
	}
	s.alive[id-1] = true
	s.count++
	return newEntity(id, s.gens[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	id := e.slot()
	s.alive[id-1] = false
	s.gens[id-1]++
	s.free = append(s.free, id)
	s.count--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.slot()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	return s.alive[id-1] && s.gens[id-1] == e.gen()
}

// handle rebuilds the live Entity for a slot.
func (s *entityStore) handle(id slot) (Entity, bool) {
	if id == 0 || int(id) > len(s.gens) || !s.alive[id-1] {
		return 0, false
	}
	return newEntity(id, s.gens[id-1]), true
}
