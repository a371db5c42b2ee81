package employee

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Well known role names.
const (
	RoleDriver = "DRIVER"
	RoleSales  = "SALES"
	RoleTech   = "TECH"
)

var (
	ErrRoleIsNotConstructed = errors.New("Role must be created via NewRole constructor")
	ErrRoleNameIsRequired   = errs.NewValueIsRequiredError("role name")
)

// Role is a named capability.
type Role struct {
	id    kernel.UUID
	name  string
	guard guard.ConstructorGuard
}

// NewRole creates a role. The name is kept as given, without surrounding spaces.
func NewRole(id kernel.UUID, name string) (*Role, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrRoleNameIsRequired
	}

	return &Role{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
}

func (r *Role) Validate() error {
	if r == nil {
		return ErrRoleIsNotConstructed
	}
	return r.guard.Validate(ErrRoleIsNotConstructed)
}

func (r *Role) ID() kernel.UUID {
	return r.id
}

func (r *Role) Name() string {
	return r.name
}

// Is reports whether the role has the given name, ignoring case.
func (r *Role) Is(name string) bool {
	return strings.EqualFold(r.name, strings.TrimSpace(name))
}
