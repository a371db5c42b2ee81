package order

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRouteDefinitionIsNotConstructed = errors.New("RouteDefinition must be created via NewRouteDefinition constructor")

// RouteDefinition is a named geographic round, such as "Arad Nord", that
// sales files orders under. It is not a dated Route.
type RouteDefinition struct {
	id    kernel.UUID
	name  string
	city  string
	guard guard.ConstructorGuard
}

func NewRouteDefinition(id kernel.UUID, name, city string) (*RouteDefinition, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("route definition name")
	}

	return &RouteDefinition{
		id:    id,
		name:  name,
		city:  strings.TrimSpace(city),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (d *RouteDefinition) Validate() error {
	if d == nil {
		return ErrRouteDefinitionIsNotConstructed
	}
	return d.guard.Validate(ErrRouteDefinitionIsNotConstructed)
}

func (d *RouteDefinition) ID() kernel.UUID {
	return d.id
}

func (d *RouteDefinition) Name() string {
	return d.name
}

func (d *RouteDefinition) City() string {
	return d.city
}
