package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/core/domain/model/task"
)

// RouteRepository defines the persistence contract for route aggregates.
type RouteRepository interface {
	// Add persists a new route. Its task list must be empty.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists the route's own fields. Tasks are written through
	// the TaskRepository.
	Update(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route with its complete task list, photos included,
	// in insertion order. Returns an ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// Delete removes the route with every task and photo it owns.
	Delete(ctx context.Context, aggregate *route.Route) error
}

// TaskRepository defines the persistence contract for task aggregates.
type TaskRepository interface {
	// Add persists a new task with its photos. Adding a second task for an
	// order returns an ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *task.Task) error

	// Update persists status, order reference and the photo list.
	Update(ctx context.Context, aggregate *task.Task) error

	// Get retrieves a task with its photos or returns an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*task.Task, error)

	// GetByOrder retrieves the task created from an order or returns an
	// ObjectNotFoundError.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*task.Task, error)

	// ExistsForOrder reports whether a task references the order.
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)

	// Delete removes the task and its photos.
	Delete(ctx context.Context, aggregate *task.Task) error
}
