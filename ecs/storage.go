package ecs

// entityStore hands out entity handles and recycles destroyed slots. A
// recycled slot keeps its bumped generation so old handles stay dead.
type entityStore struct {
	slots []entitySlot
	free  []entityID
	count int
}

type entitySlot struct {
	gen   generation
	alive bool
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id, s.free = s.free[n-1], s.free[:n-1]
	} else {
		s.slots = append(s.slots, entitySlot{})
		id = entityID(len(s.slots))
	}
	sl := &s.slots[id-1]
	sl.alive = true
	s.count++
	return makeEntity(id, sl.gen)
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	sl := &s.slots[e.id()-1]
	sl.gen++
	sl.alive = false
	s.free = append(s.free, e.id())
	s.count--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if !e.Valid() || int(e.id()) > len(s.slots) {
		return false
	}
	sl := s.slots[e.id()-1]
	return sl.alive && sl.gen == e.generation()
}

// each visits live entities in id order.
func (s *entityStore) each(fn func(Entity)) {
	for i, sl := range s.slots {
		if sl.alive {
			fn(makeEntity(entityID(i+1), sl.gen))
		}
	}
}
