package commands

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateRouteCommandIsNotConstructed = errors.New(
		"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
	)
	ErrRouteDateIsRequired = errs.NewValueIsRequiredError("date")
)

// CreateRouteCommand plans a route for a driver on a given day.
//
// Example:
//
//	cmd, err := NewCreateRouteCommand(kernel.NewUUID(), time.Now(), driverID, "Arad")
//	if err != nil {
//	    return fmt.Errorf("invalid route: %w", err)
//	}
type CreateRouteCommand struct {
	routeID    kernel.UUID
	date       time.Time
	employeeID kernel.UUID
	county     string

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand validates the identifiers and requires a date. An
// empty county is filled from the employee by the handler.
func NewCreateRouteCommand(routeID kernel.UUID, date time.Time, employeeID kernel.UUID, county string) (CreateRouteCommand, error) {
	var dateErr error
	if date.IsZero() {
		dateErr = ErrRouteDateIsRequired
	}

	if err := errors.Join(routeID.Validate(), employeeID.Validate(), dateErr); err != nil {
		return CreateRouteCommand{}, err
	}

	return CreateRouteCommand{
		routeID:    routeID,
		date:       date,
		employeeID: employeeID,
		county:     strings.TrimSpace(county),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

func (c CreateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c CreateRouteCommand) Date() time.Time {
	return c.date
}

func (c CreateRouteCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c CreateRouteCommand) County() string {
	return c.county
}
