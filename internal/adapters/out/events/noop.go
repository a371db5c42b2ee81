package events

import (
	"context"

	"dispatch/internal/core/domain/model/task"

	"go.uber.org/zap"
)

// NoopPublisher drops events. It is used when no brokers are configured.
type NoopPublisher struct {
	logger *zap.Logger
}

func NewNoopPublisher(logger *zap.Logger) NoopPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return NoopPublisher{logger: logger.Named("noop_publisher")}
}

func (p NoopPublisher) Publish(_ context.Context, events ...task.Event) error {
	for _, event := range events {
		p.logger.Debug("task event dropped",
			zap.String("event_type", string(event.Type)),
			zap.String("task_id", event.TaskID.String()),
		)
	}
	return nil
}
