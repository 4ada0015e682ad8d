// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/household-expenses/backend/internal/domain/event"
)

// EventPublisher hands domain events returned by aggregate factories to their consumers.
type EventPublisher interface {
	// Publish delivers the events in order.
	Publish(ctx context.Context, events ...event.Event) error
}
