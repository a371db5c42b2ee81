package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// CreateTaskFromOrderCommandHandler runs the dispatch workflow: it checks
// the order has no task yet, loads the order, its route and its client,
// lets the TaskDispatcher build the task and stores it. Everything happens
// in one transaction, so a failed dispatch leaves no task behind.
//
// Example:
//
//	handler := NewCreateTaskFromOrderCommandHandler(uowFactory, services.NewTaskDispatcher(kernel.SystemClock{}))
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectAlreadyExists):
//	    // the order was dispatched before
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order or route
//	}
type CreateTaskFromOrderCommandHandler struct {
	uowFactory TaskUoWFactory
	dispatcher services.TaskDispatcher
}

// NewCreateTaskFromOrderCommandHandler creates the handler.
func NewCreateTaskFromOrderCommandHandler(
	uowFactory TaskUoWFactory,
	dispatcher services.TaskDispatcher,
) CreateTaskFromOrderCommandHandler {
	return CreateTaskFromOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the command.
//
// Returns an ObjectAlreadyExistsError when the order already has a task,
// either found by the pre-check or reported by the unique index when a
// concurrent dispatch won the race, and an ObjectNotFoundError when the
// order or the route does not exist. A missing client is not an error.
func (h CreateTaskFromOrderCommandHandler) Handle(ctx context.Context, cmd CreateTaskFromOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()

	exists, err := taskRepo.ExistsForOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewObjectAlreadyExistsError("task for order", cmd.OrderID().String())
	}

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	r, err := uow.RouteRepository().Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	c, err := uow.ClientRepository().Get(ctx, o.ClientID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		c = nil
	} else if err != nil {
		return err
	}

	t, err := h.dispatcher.Dispatch(cmd.TaskID(), o, c, r)
	if err != nil {
		return err
	}

	if err = taskRepo.Add(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
