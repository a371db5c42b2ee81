package queries

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/employee"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrListEmployeesQueryIsNotConstructed = errors.New(
	"ListEmployeesQuery must be created via NewListEmployeesQuery, NewListDriversQuery, " +
		"NewListEmployeesByRoleQuery or NewListDriversByCountyQuery constructor",
)

// ListEmployeesQuery lists employees by name, optionally restricted to the
// holders of a role and to a county. Role and county both match
// case-insensitively.
//
// Example:
//
//	query, err := NewListDriversByCountyQuery("arad")
//	if err != nil {
//	    return err
//	}
//	drivers, err := handler.Handle(ctx, query)
type ListEmployeesQuery struct {
	role   string
	county string
	guard  guard.ConstructorGuard
}

func NewListEmployeesQuery() ListEmployeesQuery {
	return ListEmployeesQuery{guard: guard.NewConstructorGuard()}
}

// NewListDriversQuery lists holders of the DRIVER role.
func NewListDriversQuery() ListEmployeesQuery {
	return ListEmployeesQuery{role: employee.RoleDriver, guard: guard.NewConstructorGuard()}
}

func NewListEmployeesByRoleQuery(role string) (ListEmployeesQuery, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return ListEmployeesQuery{}, employee.ErrRoleNameIsRequired
	}
	return ListEmployeesQuery{role: role, guard: guard.NewConstructorGuard()}, nil
}

func NewListDriversByCountyQuery(county string) (ListEmployeesQuery, error) {
	county = strings.TrimSpace(county)
	if county == "" {
		return ListEmployeesQuery{}, errs.NewValueIsRequiredError("county")
	}
	return ListEmployeesQuery{role: employee.RoleDriver, county: county, guard: guard.NewConstructorGuard()}, nil
}

func (q ListEmployeesQuery) Validate() error {
	return q.guard.Validate(ErrListEmployeesQueryIsNotConstructed)
}
