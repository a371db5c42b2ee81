package commands

import (
	"context"
	"errors"

	"dispatch/internal/pkg/errs"
)

// DeleteOrderCommandHandler deletes an order. The task created from it, if
// any, survives with its order reference cleared.
//
// Example:
//
//	handler := NewDeleteOrderCommandHandler(uowFactory)
//	cmd, _ := NewDeleteOrderCommand(orderID)
//	err := handler.Handle(ctx, cmd)
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle returns an ObjectNotFoundError for an unknown order.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	taskRepo := uow.TaskRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	t, err := taskRepo.GetByOrder(ctx, o.ID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
	case err != nil:
		return err
	default:
		t.DetachOrder()
		if err = taskRepo.Update(ctx, t); err != nil {
			return err
		}
	}

	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
