package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/employee"
	"dispatch/internal/pkg/guard"
)

var ErrEnsureRoleCommandIsNotConstructed = errors.New(
	"EnsureRoleCommand must be created via NewEnsureRoleCommand constructor",
)

// EnsureRoleCommand makes sure a role with the given name exists.
type EnsureRoleCommand struct {
	name string

	guard guard.ConstructorGuard
}

func NewEnsureRoleCommand(name string) (EnsureRoleCommand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return EnsureRoleCommand{}, employee.ErrRoleNameIsRequired
	}

	return EnsureRoleCommand{name: name, guard: guard.NewConstructorGuard()}, nil
}

func (c EnsureRoleCommand) Validate() error {
	return c.guard.Validate(ErrEnsureRoleCommandIsNotConstructed)
}

func (c EnsureRoleCommand) Name() string {
	return c.name
}
