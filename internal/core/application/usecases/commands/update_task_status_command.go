package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/task"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateTaskStatusCommandIsNotConstructed = errors.New(
	"UpdateTaskStatusCommand must be created via NewUpdateTaskStatusCommand constructor",
)

// UpdateTaskStatusCommand moves a task along its lifecycle.
//
// Example:
//
//	cmd, err := NewUpdateTaskStatusCommand(taskID, "in_progress")
//	if err != nil {
//	    return err // unknown status name
//	}
type UpdateTaskStatusCommand struct {
	taskID kernel.UUID
	status task.Status

	guard guard.ConstructorGuard
}

// NewUpdateTaskStatusCommand parses the status name case-insensitively.
// An unknown name returns a ValueIsInvalidError.
func NewUpdateTaskStatusCommand(taskID kernel.UUID, status string) (UpdateTaskStatusCommand, error) {
	parsed, statusErr := task.ParseStatus(status)
	if err := errors.Join(taskID.Validate(), statusErr); err != nil {
		return UpdateTaskStatusCommand{}, err
	}

	return UpdateTaskStatusCommand{
		taskID: taskID,
		status: parsed,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateTaskStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTaskStatusCommandIsNotConstructed)
}

func (c UpdateTaskStatusCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c UpdateTaskStatusCommand) Status() task.Status {
	return c.status
}
