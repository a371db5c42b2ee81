package commands

import (
	"context"

	"dispatch/internal/core/domain/model/route"
)

// CreateRouteCommandHandler persists a new, empty route.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{uowFactory: uowFactory}
}

// Handle returns an ObjectNotFoundError when the employee does not exist.
// Without an explicit county the route takes the employee's county.
func (h CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	e, err := uow.EmployeeRepository().Get(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}

	county := cmd.County()
	if county == "" {
		county = e.County()
	}

	r, err := route.NewRoute(cmd.RouteID(), cmd.Date(), e.ID(), county)
	if err != nil {
		return err
	}

	if err = uow.RouteRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
