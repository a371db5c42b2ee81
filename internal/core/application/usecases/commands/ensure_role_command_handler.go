package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// EnsureRoleCommandHandler looks a role up by name and creates it when it
// is missing. Running it twice with names differing only in case yields
// one role.
type EnsureRoleCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

func NewEnsureRoleCommandHandler(uowFactory EmployeeUoWFactory) EnsureRoleCommandHandler {
	return EnsureRoleCommandHandler{uowFactory: uowFactory}
}

// Handle returns the identifier of the existing or created role.
func (h EnsureRoleCommandHandler) Handle(ctx context.Context, cmd EnsureRoleCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	role, err := ensureRole(ctx, uow.RoleRepository(), cmd.Name())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return role.ID(), nil
}
