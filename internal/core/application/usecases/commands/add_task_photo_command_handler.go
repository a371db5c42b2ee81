package commands

import (
	"context"

	"go.uber.org/zap"

	"dispatch/internal/core/domain/model/task"
	"dispatch/internal/core/ports"
)

// AddTaskPhotoCommandHandler stores the image first and records the photo
// row afterwards. When the row cannot be committed the uploaded object is
// removed again.
type AddTaskPhotoCommandHandler struct {
	uowFactory TaskUoWFactory
	store      ports.PhotoStore
	logger     *zap.Logger
}

func NewAddTaskPhotoCommandHandler(
	uowFactory TaskUoWFactory,
	store ports.PhotoStore,
	logger *zap.Logger,
) AddTaskPhotoCommandHandler {
	return AddTaskPhotoCommandHandler{
		uowFactory: uowFactory,
		store:      store,
		logger:     logger.Named("add_task_photo"),
	}
}

// Handle returns an ObjectNotFoundError for an unknown task, before
// anything is uploaded.
func (h AddTaskPhotoCommandHandler) Handle(ctx context.Context, cmd AddTaskPhotoCommand) (err error) {
	if err = cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	url, err := h.store.Put(ctx, ports.PhotoUpload{
		Data:         cmd.Data(),
		ContentType:  cmd.ContentType(),
		Folder:       task.PhotoFolder,
		OriginalName: cmd.FileName(),
	})
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			removeStoredPhotos(ctx, h.store, h.logger, url)
		}
	}()

	photo, err := task.NewPhoto(cmd.PhotoID(), url, cmd.Description())
	if err != nil {
		return err
	}

	if err = t.AddPhoto(photo); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
