package ports

import (
	"context"

	"dispatch/internal/core/domain/model/employee"
	"dispatch/internal/core/domain/model/kernel"
)

// EmployeeRepository defines the persistence contract for employees and
// their role links.
type EmployeeRepository interface {
	// Add persists a new employee. A taken email returns an
	// ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *employee.Employee) error

	// Get retrieves an employee with its roles or returns an
	// ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error)

	// ExistsByEmail reports whether the (lower-cased) email is taken.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Delete removes the employee and its role links. Roles are kept.
	Delete(ctx context.Context, id kernel.UUID) error
}

// RoleRepository defines the persistence contract for shared roles.
type RoleRepository interface {
	Add(ctx context.Context, role *employee.Role) error

	// FindByName looks a role up ignoring case or returns an
	// ObjectNotFoundError.
	FindByName(ctx context.Context, name string) (*employee.Role, error)
}
