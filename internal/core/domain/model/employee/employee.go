package employee

import (
	"errors"
	"net/mail"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee constructor")
	ErrEmailIsRequired          = errs.NewValueIsRequiredError("email")
	ErrNameIsRequired           = errs.NewValueIsRequiredError("name")
)

// Employee is a member of staff. What an employee may do is given by the
// set of roles it holds, not by a subtype.
type Employee struct {
	id       kernel.UUID
	email    string
	password Password
	name     string
	phone    string
	county   string
	roles    []*Role
	guard    guard.ConstructorGuard
}

// NewEmployee creates an employee holding roles. Duplicate roles are
// collapsed.
//
// Example:
//
//	driverRole, _ := employee.NewRole(kernel.NewUUID(), employee.RoleDriver)
//	pw, _ := employee.NewPassword("s3cret")
//	e, err := employee.NewEmployee(kernel.NewUUID(), "sofer_arad@example.ro", pw,
//	    "Ion Popescu (Arad)", "0721000001", "Arad", []*employee.Role{driverRole})
func NewEmployee(
	id kernel.UUID,
	email string,
	password Password,
	name string,
	phone string,
	county string,
	roles []*Role,
) (*Employee, error) {
	e := &Employee{
		phone:  strings.TrimSpace(phone),
		county: strings.TrimSpace(county),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setEmail(email),
		e.setPassword(password),
		e.setName(name),
		e.setRoles(roles),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEmployee rebuilds an employee from storage.
func RestoreEmployee(
	id kernel.UUID,
	email string,
	password Password,
	name string,
	phone string,
	county string,
	roles []*Role,
) (*Employee, error) {
	return NewEmployee(id, email, password, name, phone, county, roles)
}

func (e *Employee) Validate() error {
	if e == nil {
		return ErrEmployeeIsNotConstructed
	}
	return e.guard.Validate(ErrEmployeeIsNotConstructed)
}

func (e *Employee) ID() kernel.UUID {
	return e.id
}

// Email is lower-cased; it identifies the employee.
func (e *Employee) Email() string {
	return e.email
}

func (e *Employee) Password() Password {
	return e.password
}

func (e *Employee) Name() string {
	return e.name
}

func (e *Employee) Phone() string {
	return e.phone
}

func (e *Employee) County() string {
	return e.county
}

// Roles returns a copy of the role set.
func (e *Employee) Roles() []*Role {
	out := make([]*Role, len(e.roles))
	copy(out, e.roles)
	return out
}

// RoleNames lists the names of the held roles.
func (e *Employee) RoleNames() []string {
	names := make([]string, 0, len(e.roles))
	for _, r := range e.roles {
		names = append(names, r.Name())
	}
	return names
}

// HasRole reports whether the employee holds a role with the given name,
// ignoring case.
func (e *Employee) HasRole(name string) bool {
	for _, r := range e.roles {
		if r.Is(name) {
			return true
		}
	}
	return false
}

// IsDriver reports whether the employee holds the DRIVER role.
func (e *Employee) IsDriver() bool {
	return e.HasRole(RoleDriver)
}

// Grant adds a role unless a role with the same name is already held.
func (e *Employee) Grant(role *Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if e.HasRole(role.Name()) {
		return nil
	}
	e.roles = append(e.roles, role)
	return nil
}

func (e *Employee) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Employee) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrEmailIsRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	e.email = email
	return nil
}

func (e *Employee) setPassword(password Password) error {
	if password.Hash() == "" {
		return ErrPasswordIsRequired
	}
	e.password = password
	return nil
}

func (e *Employee) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	e.name = name
	return nil
}

func (e *Employee) setRoles(roles []*Role) error {
	e.roles = make([]*Role, 0, len(roles))
	for _, r := range roles {
		if err := e.Grant(r); err != nil {
			return err
		}
	}
	return nil
}
