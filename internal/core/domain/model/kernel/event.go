package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate during a command and
// published once the unit of work commits.
type DomainEvent struct {
	ID            UUID
	Name          string
	AggregateType string
	AggregateID   UUID
	OccurredAt    time.Time
	Attributes    map[string]string
}

// NewDomainEvent stamps a fresh identifier.
func NewDomainEvent(
	name, aggregateType string, aggregateID UUID, occurredAt time.Time, attrs map[string]string,
) DomainEvent {
	return DomainEvent{
		ID:            NewUUID(),
		Name:          name,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		OccurredAt:    occurredAt,
		Attributes:    attrs,
	}
}

// EventRecorder is embedded by aggregates that emit domain events.
type EventRecorder struct {
	events []DomainEvent
}

func (r *EventRecorder) Record(event DomainEvent) {
	r.events = append(r.events, event)
}

// PendingEvents returns the events recorded since the last ClearEvents.
func (r *EventRecorder) PendingEvents() []DomainEvent {
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *EventRecorder) ClearEvents() {
	r.events = nil
}
