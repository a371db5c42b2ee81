package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDeleteTaskCommandIsNotConstructed = errors.New(
	"DeleteTaskCommand must be created via NewDeleteTaskCommand constructor",
)

// DeleteTaskCommand removes a task together with its photos.
type DeleteTaskCommand struct {
	taskID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteTaskCommand(taskID kernel.UUID) (DeleteTaskCommand, error) {
	if err := taskID.Validate(); err != nil {
		return DeleteTaskCommand{}, err
	}

	return DeleteTaskCommand{taskID: taskID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteTaskCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTaskCommandIsNotConstructed)
}

func (c DeleteTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}
