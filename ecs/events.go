package ecs

// EventType identifies world events.
type EventType string

const (
	// EventAimChanged carries a bool: the new aiming flag.
	EventAimChanged EventType = "aim_changed"
	// EventMaxSpeedChanged carries the new max speed as float64.
	EventMaxSpeedChanged EventType = "max_speed_changed"
	// EventTuningReloaded carries the prefab path that was re-applied.
	EventTuningReloaded EventType = "tuning_reloaded"
)

// Event is a generic ECS event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue. It is flushed at the end of every
// scheduler pass.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Pending returns the queued events without clearing them.
func (q *EventQueue) Pending() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
