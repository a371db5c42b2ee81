package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDeleteEmployeeCommandIsNotConstructed = errors.New(
	"DeleteEmployeeCommand must be created via NewDeleteEmployeeCommand constructor",
)

// DeleteEmployeeCommand removes an employee and its role links.
type DeleteEmployeeCommand struct {
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteEmployeeCommand(employeeID kernel.UUID) (DeleteEmployeeCommand, error) {
	if err := employeeID.Validate(); err != nil {
		return DeleteEmployeeCommand{}, err
	}

	return DeleteEmployeeCommand{employeeID: employeeID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrDeleteEmployeeCommandIsNotConstructed)
}

func (c DeleteEmployeeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}
