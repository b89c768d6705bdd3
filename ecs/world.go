package ecs

import "github.com/milk9111/platformer/ecs/component"

// World owns entities, their components, the event queue and the per-tick
// timing state shared by systems.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue

	dt      float64
	tick    uint64
	aborted bool
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and retires its handle.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities in id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) { out = append(out, e) })
	return out
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// DeltaTime is the elapsed real time, in seconds, of the tick being run.
func (w *World) DeltaTime() float64 {
	if w == nil {
		return 0
	}
	return w.dt
}

// TickCount is the number of ticks the scheduler has started on this world.
func (w *World) TickCount() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// AbortTick stops the scheduler from running any further systems this tick.
func (w *World) AbortTick() {
	if w == nil {
		return
	}
	w.aborted = true
}

// TickAborted reports whether a system aborted the current tick.
func (w *World) TickAborted() bool {
	if w == nil {
		return false
	}
	return w.aborted
}

func (w *World) beginTick(dt float64) {
	w.dt = dt
	w.tick++
	w.aborted = false
}
