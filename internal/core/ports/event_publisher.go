package ports

import (
	"context"

	"dispatch/internal/core/domain/model/task"
)

// TaskEventPublisher delivers task events to other systems. It is called
// after the transaction that recorded the events has committed.
type TaskEventPublisher interface {
	Publish(ctx context.Context, events ...task.Event) error
}
