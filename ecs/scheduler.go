package ecs

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

// Scheduler runs its systems in the order they were added.
type Scheduler struct {
	systems []System
}

// NewScheduler ignores nil systems, which lets callers pass optional ones
// inline.
func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{systems: make([]System, 0, len(systems))}
	for _, sys := range systems {
		if sys != nil {
			s.systems = append(s.systems, sys)
		}
	}
	return s
}

// Update runs one tick of dt seconds. A system that calls w.AbortTick stops
// the remaining systems from running this tick.
func (s *Scheduler) Update(w *World, dt float64) {
	if s == nil || w == nil {
		return
	}
	w.beginTick(dt)
	for _, sys := range s.systems {
		if sys.Update(w); w.TickAborted() {
			return
		}
	}
}
