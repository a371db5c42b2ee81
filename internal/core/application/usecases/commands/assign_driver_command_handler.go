package commands

import (
	"context"
)

// AssignDriverCommandHandler binds a route to an employee. Assigning the
// current driver again succeeds without writing.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(uowFactory)
//	cmd, _ := NewAssignDriverCommand(routeID, driverID)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrObjectNotFound) {
//	    // route or employee is unknown
//	}
type AssignDriverCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewAssignDriverCommandHandler(uowFactory RouteUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{uowFactory: uowFactory}
}

func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	routeRepo := uow.RouteRepository()

	r, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	e, err := uow.EmployeeRepository().Get(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}

	if r.EmployeeID().IsEqual(e.ID()) {
		return nil
	}

	if err = r.AssignDriver(e.ID()); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
