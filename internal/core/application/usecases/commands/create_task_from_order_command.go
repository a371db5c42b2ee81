package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCreateTaskFromOrderCommandIsNotConstructed = errors.New(
	"CreateTaskFromOrderCommand must be created via NewCreateTaskFromOrderCommand constructor",
)

// CreateTaskFromOrderCommand requests the conversion of an order into a
// task on a route.
//
// Example:
//
//	cmd, err := NewCreateTaskFromOrderCommand(kernel.NewUUID(), orderID, routeID)
//	if err != nil {
//	    return fmt.Errorf("invalid dispatch request: %w", err)
//	}
//
//	handler := NewCreateTaskFromOrderCommandHandler(uowFactory, dispatcher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to dispatch order: %w", err)
//	}
type CreateTaskFromOrderCommand struct {
	taskID  kernel.UUID
	orderID kernel.UUID
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateTaskFromOrderCommand validates the three identifiers.
func NewCreateTaskFromOrderCommand(taskID, orderID, routeID kernel.UUID) (CreateTaskFromOrderCommand, error) {
	if err := errors.Join(taskID.Validate(), orderID.Validate(), routeID.Validate()); err != nil {
		return CreateTaskFromOrderCommand{}, err
	}

	return CreateTaskFromOrderCommand{
		taskID:  taskID,
		orderID: orderID,
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTaskFromOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateTaskFromOrderCommandIsNotConstructed)
}

// TaskID is the identifier the new task will get.
func (c CreateTaskFromOrderCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c CreateTaskFromOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateTaskFromOrderCommand) RouteID() kernel.UUID {
	return c.routeID
}
