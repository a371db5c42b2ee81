package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// UpdateTaskStatusCommandHandler applies a status change to a task.
//
// Example:
//
//	handler := NewUpdateTaskStatusCommandHandler(uowFactory, kernel.SystemClock{})
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrTransitionIsNotAllowed) {
//	    // e.g. COMPLETED -> NEW
//	}
type UpdateTaskStatusCommandHandler struct {
	uowFactory TaskUoWFactory
	clock      kernel.Clock
}

func NewUpdateTaskStatusCommandHandler(uowFactory TaskUoWFactory, clock kernel.Clock) UpdateTaskStatusCommandHandler {
	return UpdateTaskStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the task and applies the transition table. Setting the
// status a task already has is a no-op that still succeeds and writes
// nothing.
func (h UpdateTaskStatusCommandHandler) Handle(ctx context.Context, cmd UpdateTaskStatusCommand) error {
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

	t, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	changed, err := t.ChangeStatus(cmd.Status(), h.clock.Now())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err = taskRepo.Update(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
