package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"dispatch/internal/core/domain/model/task"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// DeleteTaskPhotoCommandHandler removes a photo row and, once committed,
// its stored image.
type DeleteTaskPhotoCommandHandler struct {
	uowFactory TaskUoWFactory
	store      ports.PhotoStore
	logger     *zap.Logger
}

func NewDeleteTaskPhotoCommandHandler(
	uowFactory TaskUoWFactory,
	store ports.PhotoStore,
	logger *zap.Logger,
) DeleteTaskPhotoCommandHandler {
	return DeleteTaskPhotoCommandHandler{
		uowFactory: uowFactory,
		store:      store,
		logger:     logger.Named("delete_task_photo"),
	}
}

// Handle returns an ObjectNotFoundError when the task does not exist or
// does not own the photo.
func (h DeleteTaskPhotoCommandHandler) Handle(ctx context.Context, cmd DeleteTaskPhotoCommand) error {
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

	photo, err := t.RemovePhoto(cmd.PhotoID())
	if errors.Is(err, task.ErrPhotoNotFound) {
		return errs.NewObjectNotFoundErrorWithCause("photo", cmd.PhotoID().String(), err)
	}
	if err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, t); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	removeStoredPhotos(ctx, h.store, h.logger, photo.ImageURL())
	return nil
}
