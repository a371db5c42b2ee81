package commands

import (
	"context"
)

// DeleteEmployeeCommandHandler removes an employee. An employee that still
// drives a route cannot be deleted; storage reports that as an invalid
// value.
type DeleteEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

func NewDeleteEmployeeCommandHandler(uowFactory EmployeeUoWFactory) DeleteEmployeeCommandHandler {
	return DeleteEmployeeCommandHandler{uowFactory: uowFactory}
}

func (h DeleteEmployeeCommandHandler) Handle(ctx context.Context, cmd DeleteEmployeeCommand) error {
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

	employeeRepo := uow.EmployeeRepository()

	e, err := employeeRepo.Get(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}

	if err = employeeRepo.Delete(ctx, e.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
