package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// Lifecycle event types. Events pushed between ticks are visible to every
// system during the next tick and are dropped when the tick ends.
const (
	// EventSceneReady fires once geometry is in place and bounding boxes can be measured.
	EventSceneReady = "scene_ready"
	// EventCameraReloaded asks distance-based systems to re-capture their anchors.
	EventCameraReloaded = "camera_reloaded"
	// EventFit forces a fit-to-viewport recomputation. Data is the target
	// Entity, or zero for every fit entity.
	EventFit = "fit"
	// EventFollowTriggered is pushed when a follow animation is requested. Data
	// is the Entity.
	EventFollowTriggered = "follow_triggered"
)

// EventQueue is a simple FIFO queue.
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

// Has reports whether an event of the given type is queued.
func (q *EventQueue) Has(typ string) bool {
	if q == nil {
		return false
	}
	for _, evt := range q.items {
		if evt.Type == typ {
			return true
		}
	}
	return false
}

// Filter returns the queued events of one type without consuming them.
func (q *EventQueue) Filter(typ string) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
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
