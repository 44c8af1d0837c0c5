package handlers

import (
	"context"

	"go.uber.org/zap"

	"trivia-backend/application/ports"
	"trivia-backend/domain/events"
	"trivia-backend/pkg/observability"
)

// publishBestEffort hands event to the publisher. A failed publish is logged
// and counted but never fails the command that raised it.
func publishBestEffort(
	ctx context.Context,
	publisher ports.EventPublisher,
	metrics ports.MetricsRecorder,
	logger *zap.Logger,
	event events.DomainEvent,
) {
	tags := map[string]string{"type": event.GetEventType()}

	if err := publisher.Publish(ctx, event); err != nil {
		metrics.IncrementCounter(observability.CounterEventsFailed, tags)
		logger.Warn("Failed to publish domain event",
			zap.String("eventType", event.GetEventType()),
			zap.String("aggregateID", event.GetAggregateID()),
			zap.Error(err),
		)
		return
	}

	metrics.IncrementCounter(observability.CounterEventsPublished, tags)
}
