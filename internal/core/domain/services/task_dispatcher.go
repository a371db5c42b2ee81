package services

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/client"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/core/domain/model/task"
)

// UnknownClientName is printed on a task whose order's client no longer exists.
const UnknownClientName = "Unknown client"

// TaskDispatcher is a domain service that converts an order into a task on
// a route.
//
// Business rules:
//   - The task type is derived from the order type tag; unknown tags mean placement
//   - Client name and phone are copied from the client at dispatch time
//   - The client's address is used when set, otherwise the order location
//   - A missing client yields UnknownClientName and the order location
//   - The task starts NEW, scheduled at the dispatcher's clock, with the
//     order notes as internal notes
//
// Example usage:
//
//	dispatcher := services.NewTaskDispatcher(kernel.SystemClock{})
//	t, err := dispatcher.Dispatch(kernel.NewUUID(), o, c, r)
//	if err != nil {
//	    return err
//	}
//	err = taskRepo.Add(ctx, t)
type TaskDispatcher struct {
	clock kernel.Clock
}

// NewTaskDispatcher creates a dispatcher stamping tasks with clock.
func NewTaskDispatcher(clock kernel.Clock) TaskDispatcher {
	return TaskDispatcher{clock: clock}
}

// Dispatch creates the task for order o on route r.
//
// Parameters:
//   - taskID: identifier of the new task
//   - o: the order (must be valid)
//   - c: the order's client, nil when it could not be found
//   - r: the target route (must be valid)
//
// Returns:
//   - *task.Task: the new task, not yet persisted
//   - error: validation errors of the inputs
//
// Uniqueness of the task per order is not checked here; the caller checks
// it in the same transaction and storage enforces it.
func (d TaskDispatcher) Dispatch(taskID kernel.UUID, o *order.Order, c *client.Client, r *route.Route) (*task.Task, error) {
	if err := errors.Join(o.Validate(), r.Validate()); err != nil {
		return nil, err
	}

	details, err := d.resolveDetails(o, c)
	if err != nil {
		return nil, err
	}

	orderID := o.ID()
	return task.NewTask(
		taskID,
		r.ID(),
		&orderID,
		task.MapOrderType(o.Type()),
		d.clock.Now(),
		details,
	)
}

// resolveDetails builds the client snapshot of the task. It branches on the
// client variant and fails closed on a variant it does not know.
func (d TaskDispatcher) resolveDetails(o *order.Order, c *client.Client) (task.Details, error) {
	details := task.Details{
		Address:       o.Details().Location,
		ClientName:    UnknownClientName,
		InternalNotes: o.Details().Notes,
	}

	if c == nil {
		return details, nil
	}

	if err := c.Validate(); err != nil {
		return task.Details{}, err
	}

	name, err := c.DisplayName()
	if err != nil {
		return task.Details{}, err
	}

	details.ClientName = name
	details.ClientPhone = c.Phone()
	if address := strings.TrimSpace(c.Address()); address != "" {
		details.Address = address
	}

	return details, nil
}
