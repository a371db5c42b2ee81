package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrListTasksQueryIsNotConstructed = errors.New(
	"ListTasksQuery must be created via NewListTasksQuery or NewListTasksByRouteQuery constructor",
)

// ListTasksQuery lists tasks with their photos in insertion order,
// optionally restricted to one route.
type ListTasksQuery struct {
	routeID *kernel.UUID
	guard   guard.ConstructorGuard
}

func NewListTasksQuery() ListTasksQuery {
	return ListTasksQuery{guard: guard.NewConstructorGuard()}
}

func NewListTasksByRouteQuery(routeID kernel.UUID) (ListTasksQuery, error) {
	if err := routeID.Validate(); err != nil {
		return ListTasksQuery{}, err
	}
	return ListTasksQuery{routeID: &routeID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListTasksQuery) Validate() error {
	return q.guard.Validate(ErrListTasksQueryIsNotConstructed)
}
