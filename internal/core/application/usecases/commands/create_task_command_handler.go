package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/task"
)

// CreateTaskCommandHandler adds a manual task to an existing route.
type CreateTaskCommandHandler struct {
	uowFactory TaskUoWFactory
	clock      kernel.Clock
}

func NewCreateTaskCommandHandler(uowFactory TaskUoWFactory, clock kernel.Clock) CreateTaskCommandHandler {
	return CreateTaskCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns an ObjectNotFoundError when the route does not exist.
func (h CreateTaskCommandHandler) Handle(ctx context.Context, cmd CreateTaskCommand) error {
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

	r, err := uow.RouteRepository().Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	scheduled := cmd.ScheduledTime()
	if scheduled.IsZero() {
		scheduled = h.clock.Now()
	}

	t, err := task.NewTask(cmd.TaskID(), r.ID(), nil, cmd.Type(), scheduled, cmd.Details())
	if err != nil {
		return err
	}

	if err = uow.TaskRepository().Add(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
