package queries

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrListRoutesQueryIsNotConstructed = errors.New(
	"ListRoutesQuery must be created via NewListRoutesQuery, NewListRoutesByEmployeeQuery " +
		"or NewListRoutesByCountyQuery constructor",
)

// ListRoutesQuery lists routes newest first, optionally restricted to one
// employee or one county. The county matches case-insensitively. The
// filtered listings carry each route's tasks; the full listing only counts
// them.
type ListRoutesQuery struct {
	employeeID *kernel.UUID
	county     string
	guard      guard.ConstructorGuard
}

func NewListRoutesQuery() ListRoutesQuery {
	return ListRoutesQuery{guard: guard.NewConstructorGuard()}
}

func NewListRoutesByEmployeeQuery(employeeID kernel.UUID) (ListRoutesQuery, error) {
	if err := employeeID.Validate(); err != nil {
		return ListRoutesQuery{}, err
	}
	return ListRoutesQuery{employeeID: &employeeID, guard: guard.NewConstructorGuard()}, nil
}

func NewListRoutesByCountyQuery(county string) (ListRoutesQuery, error) {
	county = strings.TrimSpace(county)
	if county == "" {
		return ListRoutesQuery{}, errs.NewValueIsRequiredError("county")
	}
	return ListRoutesQuery{county: county, guard: guard.NewConstructorGuard()}, nil
}

func (q ListRoutesQuery) Validate() error {
	return q.guard.Validate(ErrListRoutesQueryIsNotConstructed)
}
