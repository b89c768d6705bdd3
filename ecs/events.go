package ecs

// EventType names something that happened during a tick.
type EventType string

// Event is stamped with the tick it was emitted on. Data is owned by the
// emitting system and is read-only for listeners.
type Event struct {
	Type EventType
	Tick uint64
	Data any
}

// EventQueue buffers events until the owner of the world drains them, in
// emission order.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	q.items = append(q.items, evt)
}

func (q *EventQueue) Len() int { return len(q.items) }

// Drain hands over the buffered events. The returned slice is not reused.
func (q *EventQueue) Drain() []Event {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Emit queues an event stamped with the current tick.
func (w *World) Emit(typ EventType, data any) {
	if w == nil {
		return
	}
	w.events.Push(Event{Type: typ, Tick: w.tick, Data: data})
}
