// Package event defines the domain events returned by aggregate factories.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Event is a fact recorded by an aggregate.
type Event interface {
	EventID() uuid.UUID
	OccurredAt() time.Time
	Name() string
}

// identifiable is implemented by events that name the aggregate they were
// recorded for.
type identifiable interface {
	withAggregateID(id int64) Event
}

// WithAggregateID returns a copy of events where every event recorded before
// the aggregate had an id carries id. Events that already have one are kept.
func WithAggregateID(events []Event, id int64) []Event {
	stamped := make([]Event, len(events))
	for i, e := range events {
		if ev, ok := e.(identifiable); ok {
			stamped[i] = ev.withAggregateID(id)
			continue
		}
		stamped[i] = e
	}
	return stamped
}

// Base carries the identity and timestamp shared by every event.
type Base struct {
	id         uuid.UUID
	occurredAt time.Time
}

// NewBase stamps a new event id and the current UTC time.
func NewBase() Base {
	return Base{
		id:         uuid.New(),
		occurredAt: time.Now().UTC(),
	}
}

// EventID returns the unique event id.
func (b Base) EventID() uuid.UUID {
	return b.id
}

// OccurredAt returns when the event was recorded.
func (b Base) OccurredAt() time.Time {
	return b.occurredAt
}
