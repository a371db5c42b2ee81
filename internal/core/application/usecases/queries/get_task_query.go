package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetTaskQueryIsNotConstructed = errors.New(
	"GetTaskQuery must be created via NewGetTaskQuery or NewGetTaskByOrderQuery constructor",
)

// GetTaskQuery reads one task with its photos, either by its own id or by
// the order it was created from.
type GetTaskQuery struct {
	taskID  *kernel.UUID
	orderID *kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetTaskQuery(taskID kernel.UUID) (GetTaskQuery, error) {
	if err := taskID.Validate(); err != nil {
		return GetTaskQuery{}, err
	}
	return GetTaskQuery{taskID: &taskID, guard: guard.NewConstructorGuard()}, nil
}

func NewGetTaskByOrderQuery(orderID kernel.UUID) (GetTaskQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetTaskQuery{}, err
	}
	return GetTaskQuery{orderID: &orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTaskQuery) Validate() error {
	return q.guard.Validate(ErrGetTaskQueryIsNotConstructed)
}

// TaskResponse is the read model of a task.
type TaskResponse struct {
	ID            kernel.UUID
	RouteID       kernel.UUID
	OrderID       *kernel.UUID
	Type          string
	ScheduledTime time.Time
	Status        string
	Address       string
	ClientName    string
	ClientPhone   string
	InternalNotes string
	Photos        []PhotoResponse
}

type PhotoResponse struct {
	ID          kernel.UUID
	ImageURL    string
	Description string
}
