package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetEmployeeQueryIsNotConstructed = errors.New("GetEmployeeQuery must be created via NewGetEmployeeQuery constructor")

type GetEmployeeQuery struct {
	employeeID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetEmployeeQuery(employeeID kernel.UUID) (GetEmployeeQuery, error) {
	if err := employeeID.Validate(); err != nil {
		return GetEmployeeQuery{}, err
	}
	return GetEmployeeQuery{employeeID: employeeID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetEmployeeQuery) EmployeeID() kernel.UUID {
	return q.employeeID
}

func (q GetEmployeeQuery) Validate() error {
	return q.guard.Validate(ErrGetEmployeeQueryIsNotConstructed)
}

// EmployeeResponse is the read model of an employee. The password hash is
// never read.
type EmployeeResponse struct {
	ID     kernel.UUID
	Email  string
	Name   string
	Phone  string
	County string
	Roles  []string
}
