package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/employee"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRegisterEmployeeCommandIsNotConstructed = errors.New(
	"RegisterEmployeeCommand must be created via NewRegisterEmployeeCommand constructor",
)

// RegisterEmployeeCommand adds a member of staff with a set of role names.
// Roles that do not exist yet are created.
//
// Example:
//
//	cmd, err := NewRegisterEmployeeCommand(kernel.NewUUID(), "sofer_arad@example.ro", "s3cret",
//	    "Ion Popescu (Arad)", "0721000001", "Arad", []string{employee.RoleDriver})
type RegisterEmployeeCommand struct {
	employeeID kernel.UUID
	email      string
	password   string
	name       string
	phone      string
	county     string
	roleNames  []string

	guard guard.ConstructorGuard
}

func NewRegisterEmployeeCommand(
	employeeID kernel.UUID,
	email string,
	password string,
	name string,
	phone string,
	county string,
	roleNames []string,
) (RegisterEmployeeCommand, error) {
	var passwordErr error
	if password == "" {
		passwordErr = employee.ErrPasswordIsRequired
	}

	if err := errors.Join(employeeID.Validate(), passwordErr); err != nil {
		return RegisterEmployeeCommand{}, err
	}

	return RegisterEmployeeCommand{
		employeeID: employeeID,
		email:      email,
		password:   password,
		name:       name,
		phone:      phone,
		county:     county,
		roleNames:  append([]string(nil), roleNames...),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrRegisterEmployeeCommandIsNotConstructed)
}

func (c RegisterEmployeeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c RegisterEmployeeCommand) Email() string {
	return c.email
}

// Password is the plain text password, hashed by the handler.
func (c RegisterEmployeeCommand) Password() string {
	return c.password
}

func (c RegisterEmployeeCommand) Name() string {
	return c.name
}

func (c RegisterEmployeeCommand) Phone() string {
	return c.phone
}

func (c RegisterEmployeeCommand) County() string {
	return c.county
}

func (c RegisterEmployeeCommand) RoleNames() []string {
	return append([]string(nil), c.roleNames...)
}
