package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/task"
	"dispatch/internal/pkg/guard"
)

var ErrCreateTaskCommandIsNotConstructed = errors.New(
	"CreateTaskCommand must be created via NewCreateTaskCommand constructor",
)

// CreateTaskCommand schedules a task on a route that does not come from an
// order, such as a maintenance visit.
type CreateTaskCommand struct {
	taskID        kernel.UUID
	routeID       kernel.UUID
	taskType      task.Type
	scheduledTime time.Time
	details       task.Details

	guard guard.ConstructorGuard
}

// NewCreateTaskCommand validates the identifiers and the task type.
// A zero scheduledTime means "now" and is resolved by the handler.
func NewCreateTaskCommand(
	taskID kernel.UUID,
	routeID kernel.UUID,
	taskType string,
	scheduledTime time.Time,
	details task.Details,
) (CreateTaskCommand, error) {
	parsed, typeErr := task.ParseType(taskType)
	if err := errors.Join(taskID.Validate(), routeID.Validate(), typeErr); err != nil {
		return CreateTaskCommand{}, err
	}

	return CreateTaskCommand{
		taskID:        taskID,
		routeID:       routeID,
		taskType:      parsed,
		scheduledTime: scheduledTime,
		details:       details,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateTaskCommand) Validate() error {
	return c.guard.Validate(ErrCreateTaskCommandIsNotConstructed)
}

func (c CreateTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c CreateTaskCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c CreateTaskCommand) Type() task.Type {
	return c.taskType
}

// ScheduledTime is zero when the caller did not choose a time.
func (c CreateTaskCommand) ScheduledTime() time.Time {
	return c.scheduledTime
}

func (c CreateTaskCommand) Details() task.Details {
	return c.details
}
