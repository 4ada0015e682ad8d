// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"log/slog"

	"github.com/household-expenses/backend/internal/application/adapter"
	"github.com/household-expenses/backend/internal/domain/event"
)

// logEventPublisher implements adapter.EventPublisher by writing each event as
// a structured log record. Events stay in-process.
type logEventPublisher struct {
	logger *slog.Logger
}

// NewLogEventPublisher creates an event publisher backed by logger.
// A nil logger uses slog.Default().
func NewLogEventPublisher(logger *slog.Logger) adapter.EventPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &logEventPublisher{logger: logger}
}

// Publish logs the events in order.
func (p *logEventPublisher) Publish(ctx context.Context, events ...event.Event) error {
	for _, e := range events {
		attrs := []any{
			"event_id", e.EventID().String(),
			"event_name", e.Name(),
			"occurred_at", e.OccurredAt(),
		}

		switch ev := e.(type) {
		case event.CategoryCreated:
			attrs = append(attrs,
				"category_id", ev.CategoryID,
				"description", ev.Description,
				"purpose", int(ev.Purpose),
			)
		case event.TransactionCreated:
			attrs = append(attrs,
				"transaction_id", ev.TransactionID,
				"person_id", ev.PersonID,
				"category_id", ev.CategoryID,
				"amount", ev.Amount.StringFixed(2),
				"type", int(ev.Type),
			)
		}

		p.logger.InfoContext(ctx, "domain event", attrs...)
	}
	return nil
}
