package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetRouteQueryIsNotConstructed = errors.New("GetRouteQuery must be created via NewGetRouteQuery constructor")

// GetRouteQuery reads a route with its complete task list.
type GetRouteQuery struct {
	routeID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetRouteQuery(routeID kernel.UUID) (GetRouteQuery, error) {
	if err := routeID.Validate(); err != nil {
		return GetRouteQuery{}, err
	}
	return GetRouteQuery{routeID: routeID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRouteQuery) RouteID() kernel.UUID {
	return q.routeID
}

func (q GetRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteQueryIsNotConstructed)
}

// RouteResponse is the read model of a route. Tasks is filled by
// GetRouteQueryHandler and by the employee and county listings; the full
// listing reports TaskCount only.
type RouteResponse struct {
	ID           kernel.UUID
	Date         time.Time
	EmployeeID   kernel.UUID
	EmployeeName string
	County       string
	TaskCount    int
	Tasks        []TaskResponse
}
