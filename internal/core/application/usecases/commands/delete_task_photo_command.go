package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDeleteTaskPhotoCommandIsNotConstructed = errors.New(
	"DeleteTaskPhotoCommand must be created via NewDeleteTaskPhotoCommand constructor",
)

// DeleteTaskPhotoCommand detaches one photo from a task and deletes its image.
type DeleteTaskPhotoCommand struct {
	taskID  kernel.UUID
	photoID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteTaskPhotoCommand(taskID, photoID kernel.UUID) (DeleteTaskPhotoCommand, error) {
	if err := errors.Join(taskID.Validate(), photoID.Validate()); err != nil {
		return DeleteTaskPhotoCommand{}, err
	}

	return DeleteTaskPhotoCommand{
		taskID:  taskID,
		photoID: photoID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteTaskPhotoCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTaskPhotoCommandIsNotConstructed)
}

func (c DeleteTaskPhotoCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c DeleteTaskPhotoCommand) PhotoID() kernel.UUID {
	return c.photoID
}
