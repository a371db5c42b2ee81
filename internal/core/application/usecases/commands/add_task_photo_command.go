package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAddTaskPhotoCommandIsNotConstructed = errors.New(
		"AddTaskPhotoCommand must be created via NewAddTaskPhotoCommand constructor",
	)
	ErrPhotoDataIsRequired = errs.NewValueIsRequiredError("photo data")
)

// AddTaskPhotoCommand uploads a picture taken on site and attaches it to a task.
//
// Example:
//
//	cmd, err := NewAddTaskPhotoCommand(taskID, kernel.NewUUID(), data,
//	    "toaleta.jpg", "image/jpeg", "after cleaning")
type AddTaskPhotoCommand struct {
	taskID      kernel.UUID
	photoID     kernel.UUID
	data        []byte
	fileName    string
	contentType string
	description string

	guard guard.ConstructorGuard
}

func NewAddTaskPhotoCommand(
	taskID kernel.UUID,
	photoID kernel.UUID,
	data []byte,
	fileName string,
	contentType string,
	description string,
) (AddTaskPhotoCommand, error) {
	var dataErr error
	if len(data) == 0 {
		dataErr = ErrPhotoDataIsRequired
	}

	if err := errors.Join(taskID.Validate(), photoID.Validate(), dataErr); err != nil {
		return AddTaskPhotoCommand{}, err
	}

	return AddTaskPhotoCommand{
		taskID:      taskID,
		photoID:     photoID,
		data:        data,
		fileName:    strings.TrimSpace(fileName),
		contentType: contentType,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AddTaskPhotoCommand) Validate() error {
	return c.guard.Validate(ErrAddTaskPhotoCommandIsNotConstructed)
}

func (c AddTaskPhotoCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c AddTaskPhotoCommand) PhotoID() kernel.UUID {
	return c.photoID
}

func (c AddTaskPhotoCommand) Data() []byte {
	return c.data
}

func (c AddTaskPhotoCommand) FileName() string {
	return c.fileName
}

func (c AddTaskPhotoCommand) ContentType() string {
	return c.contentType
}

func (c AddTaskPhotoCommand) Description() string {
	return c.description
}
