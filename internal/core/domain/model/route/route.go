// Package route provides the Route aggregate: a driver's set of tasks for
// one day.
//
// A route exclusively owns its tasks. Loading a route always loads the
// complete task list with photos, in insertion order, and deleting a route
// deletes every task and photo it owns.
package route

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/task"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrRouteIsNotConstructed is returned when a Route was not created through a constructor.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute constructor")
	// ErrDateIsRequired is returned for a route without a date.
	ErrDateIsRequired = errs.NewValueIsRequiredError("date")
	// ErrEmployeeIsRequired is returned for a route without a driver.
	ErrEmployeeIsRequired = errs.NewValueIsRequiredError("employee")
	// ErrTaskBelongsToAnotherRoute is returned by RestoreRoute when a task's owner differs.
	ErrTaskBelongsToAnotherRoute = errs.NewValueIsInvalidErrorWithCause("task", errors.New("task belongs to another route"))
)

// Route groups the tasks one employee works on a given date.
//
// Invariants:
//   - date and employee are always set
//   - every task in the list has this route as its owner
//   - county is a denormalized copy used for listings, not a reference
//
// Example usage:
//
//	r, err := route.NewRoute(kernel.NewUUID(), today, driver.ID(), driver.County())
//	if err != nil {
//	    return err
//	}
//	r.AssignDriver(otherDriver.ID())
type Route struct {
	id         kernel.UUID
	date       time.Time
	employeeID kernel.UUID
	county     string
	tasks      []*task.Task
	guard      guard.ConstructorGuard
}

// NewRoute creates a route with no tasks. Only the calendar day of date is
// kept.
func NewRoute(id kernel.UUID, date time.Time, employeeID kernel.UUID, county string) (*Route, error) {
	return RestoreRoute(id, date, employeeID, county, nil)
}

// RestoreRoute rebuilds a route with its fully loaded task list.
//
// Returns ErrTaskBelongsToAnotherRoute when a task is owned by a different
// route, which would mean the loading query is wrong.
func RestoreRoute(id kernel.UUID, date time.Time, employeeID kernel.UUID, county string, tasks []*task.Task) (*Route, error) {
	r := &Route{
		county: strings.TrimSpace(county),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setDate(date),
		r.setEmployeeID(employeeID),
	); err != nil {
		return nil, err
	}

	if err := r.setTasks(tasks); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Route was created through a constructor.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r *Route) ID() kernel.UUID {
	return r.id
}

// Date returns the day of the route at midnight UTC.
func (r *Route) Date() time.Time {
	return r.date
}

func (r *Route) EmployeeID() kernel.UUID {
	return r.employeeID
}

func (r *Route) County() string {
	return r.county
}

// Tasks returns a copy of the task list in insertion order.
func (r *Route) Tasks() []*task.Task {
	out := make([]*task.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// AssignDriver binds the route to employeeID. Assigning the current driver
// again leaves the route unchanged.
func (r *Route) AssignDriver(employeeID kernel.UUID) error {
	return r.setEmployeeID(employeeID)
}

// Dissolve prepares the route for deletion: every owned task records its
// deletion at the given time. It returns the image URLs of all photos of
// all tasks so the stored objects can be removed once the deletion has
// committed.
func (r *Route) Dissolve(at time.Time) []string {
	var urls []string
	for _, t := range r.tasks {
		t.MarkDeleted(at)
		urls = append(urls, t.PhotoURLs()...)
	}
	return urls
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}
	y, m, d := date.Date()
	r.date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return nil
}

func (r *Route) setEmployeeID(employeeID kernel.UUID) error {
	if employeeID.Validate() != nil {
		return ErrEmployeeIsRequired
	}
	r.employeeID = employeeID
	return nil
}

func (r *Route) setTasks(tasks []*task.Task) error {
	r.tasks = make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return err
		}
		if !t.RouteID().IsEqual(r.id) {
			return ErrTaskBelongsToAnotherRoute
		}
		r.tasks = append(r.tasks, t)
	}
	return nil
}
