package commands

import (
	"context"
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/employee"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// RegisterEmployeeCommandHandler stores a new employee. The email must be
// free; each role name is looked up ignoring case and created when missing.
type RegisterEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

func NewRegisterEmployeeCommandHandler(uowFactory EmployeeUoWFactory) RegisterEmployeeCommandHandler {
	return RegisterEmployeeCommandHandler{uowFactory: uowFactory}
}

// Handle returns an ObjectAlreadyExistsError when the email is taken.
func (h RegisterEmployeeCommandHandler) Handle(ctx context.Context, cmd RegisterEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	password, err := employee.NewPassword(cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	employeeRepo := uow.EmployeeRepository()

	email := strings.ToLower(strings.TrimSpace(cmd.Email()))
	taken, err := employeeRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		return errs.NewObjectAlreadyExistsError("employee", email)
	}

	roles := make([]*employee.Role, 0, len(cmd.RoleNames()))
	for _, name := range cmd.RoleNames() {
		role, err := ensureRole(ctx, uow.RoleRepository(), name)
		if err != nil {
			return err
		}
		roles = append(roles, role)
	}

	e, err := employee.NewEmployee(
		cmd.EmployeeID(),
		email,
		password,
		cmd.Name(),
		cmd.Phone(),
		cmd.County(),
		roles,
	)
	if err != nil {
		return err
	}

	if err = employeeRepo.Add(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// ensureRole returns the role called name, creating it when no role
// matches ignoring case.
func ensureRole(ctx context.Context, repo ports.RoleRepository, name string) (*employee.Role, error) {
	role, err := repo.FindByName(ctx, name)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	role, err = employee.NewRole(kernel.NewUUID(), name)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}
