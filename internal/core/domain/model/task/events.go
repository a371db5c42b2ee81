package task

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// EventType names a fact about a task.
type EventType string

const (
	EventCreated       EventType = "task.created"
	EventStatusChanged EventType = "task.status_changed"
	EventDeleted       EventType = "task.deleted"
)

// Event is recorded by the Task aggregate and published once the
// transaction that produced it has committed.
type Event struct {
	Type       EventType
	TaskID     kernel.UUID
	RouteID    kernel.UUID
	OrderID    *kernel.UUID
	TaskType   Type
	Status     Status
	Previous   Status
	OccurredAt time.Time
}
