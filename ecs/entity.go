package ecs

import "fmt"

// Entity is a handle into a World: a 1-based slot id in the low half and the
// slot's generation in the high half. Destroying an entity bumps the
// generation, so stale handles stop resolving. The zero Entity is never
// handed out.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

const (
	idMask   = 1<<32 - 1
	genShift = 32
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(gen)<<genShift | Entity(id)
}

func (e Entity) id() entityID { return entityID(e & idMask) }
func (e Entity) generation() generation { return generation(e >> genShift) }
func (e Entity) Valid() bool { return e.id() != 0 }

func (e Entity) String() string {
	if !e.Valid() {
		return "entity(nil)"
	}
	return fmt.Sprintf("entity(%d@%d)", e.id(), e.generation())
}
