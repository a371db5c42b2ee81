package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCreateRouteDefinitionCommandIsNotConstructed = errors.New(
	"CreateRouteDefinitionCommand must be created via NewCreateRouteDefinitionCommand constructor",
)

// CreateRouteDefinitionCommand declares a named round orders can be filed under.
type CreateRouteDefinitionCommand struct {
	definitionID kernel.UUID
	name         string
	city         string

	guard guard.ConstructorGuard
}

func NewCreateRouteDefinitionCommand(definitionID kernel.UUID, name, city string) (CreateRouteDefinitionCommand, error) {
	if err := definitionID.Validate(); err != nil {
		return CreateRouteDefinitionCommand{}, err
	}

	return CreateRouteDefinitionCommand{
		definitionID: definitionID,
		name:         name,
		city:         city,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRouteDefinitionCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteDefinitionCommandIsNotConstructed)
}

func (c CreateRouteDefinitionCommand) DefinitionID() kernel.UUID {
	return c.definitionID
}

func (c CreateRouteDefinitionCommand) Name() string {
	return c.name
}

func (c CreateRouteDefinitionCommand) City() string {
	return c.city
}
