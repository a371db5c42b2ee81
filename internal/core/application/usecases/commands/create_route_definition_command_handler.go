package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// CreateRouteDefinitionCommandHandler stores a route definition. Name
// validation happens in the domain constructor.
type CreateRouteDefinitionCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateRouteDefinitionCommandHandler(uowFactory OrderUoWFactory) CreateRouteDefinitionCommandHandler {
	return CreateRouteDefinitionCommandHandler{uowFactory: uowFactory}
}

func (h CreateRouteDefinitionCommandHandler) Handle(ctx context.Context, cmd CreateRouteDefinitionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	definition, err := order.NewRouteDefinition(cmd.DefinitionID(), cmd.Name(), cmd.City())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RouteDefinitionRepository().Add(ctx, definition); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
