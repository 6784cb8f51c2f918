package ecs

// EventType names an event kind.
type EventType string

const (
	// EventReward is pushed when the score counter accepts a reward.
	// Data is RewardEvent.
	EventReward EventType = "reward"
	// EventProfileReloaded is pushed after a profile file is reloaded.
	// Data is the profile name.
	EventProfileReloaded EventType = "profile_reloaded"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// RewardEvent describes an accepted click.
type RewardEvent struct {
	Entity Entity
	X, Y   float64
	Points int
}

// EventQueue is a simple FIFO queue, cleared at the end of every tick.
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

// Each visits queued events of type t without consuming them.
func (q *EventQueue) Each(t EventType, fn func(Event)) {
	if q == nil {
		return
	}
	for _, evt := range q.items {
		if evt.Type == t {
			fn(evt)
		}
	}
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

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
