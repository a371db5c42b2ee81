package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrListRouteDefinitionsQueryIsNotConstructed = errors.New(
	"ListRouteDefinitionsQuery must be created via NewListRouteDefinitionsQuery constructor",
)

type ListRouteDefinitionsQuery struct {
	guard guard.ConstructorGuard
}

func NewListRouteDefinitionsQuery() ListRouteDefinitionsQuery {
	return ListRouteDefinitionsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListRouteDefinitionsQuery) Validate() error {
	return q.guard.Validate(ErrListRouteDefinitionsQueryIsNotConstructed)
}

type RouteDefinitionResponse struct {
	ID   kernel.UUID
	Name string
	City string
}
