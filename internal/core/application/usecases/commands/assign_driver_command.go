package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand hands a route over to another employee.
type AssignDriverCommand struct {
	routeID    kernel.UUID
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignDriverCommand(routeID, employeeID kernel.UUID) (AssignDriverCommand, error) {
	if err := errors.Join(routeID.Validate(), employeeID.Validate()); err != nil {
		return AssignDriverCommand{}, err
	}

	return AssignDriverCommand{
		routeID:    routeID,
		employeeID: employeeID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

func (c AssignDriverCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c AssignDriverCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}
