package commands

import (
	"context"

	"go.uber.org/zap"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// DeleteTaskCommandHandler deletes a task and its photo rows in one
// transaction, then removes the photo objects from the store.
type DeleteTaskCommandHandler struct {
	uowFactory TaskUoWFactory
	store      ports.PhotoStore
	clock      kernel.Clock
	logger     *zap.Logger
}

func NewDeleteTaskCommandHandler(
	uowFactory TaskUoWFactory,
	store ports.PhotoStore,
	clock kernel.Clock,
	logger *zap.Logger,
) DeleteTaskCommandHandler {
	return DeleteTaskCommandHandler{
		uowFactory: uowFactory,
		store:      store,
		clock:      clock,
		logger:     logger.Named("delete_task"),
	}
}

func (h DeleteTaskCommandHandler) Handle(ctx context.Context, cmd DeleteTaskCommand) error {
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

	t.MarkDeleted(h.clock.Now())
	urls := t.PhotoURLs()

	if err = taskRepo.Delete(ctx, t); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	removeStoredPhotos(ctx, h.store, h.logger, urls...)
	return nil
}
