package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery, NewListOrdersByClientQuery " +
		"or NewListOrdersByRouteDefinitionQuery constructor",
)

// ListOrdersQuery lists orders by number, optionally restricted to one
// client or one route definition.
//
// Example:
//
//	query, err := NewListOrdersByClientQuery(clientID)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	clientID          *kernel.UUID
	routeDefinitionID *kernel.UUID
	guard             guard.ConstructorGuard
}

func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

func NewListOrdersByClientQuery(clientID kernel.UUID) (ListOrdersQuery, error) {
	if err := clientID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{clientID: &clientID, guard: guard.NewConstructorGuard()}, nil
}

func NewListOrdersByRouteDefinitionQuery(routeDefinitionID kernel.UUID) (ListOrdersQuery, error) {
	if err := routeDefinitionID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{routeDefinitionID: &routeDefinitionID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
