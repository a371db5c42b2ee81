// Package guard holds the constructor guard embedded by value objects, entities
// and command objects so that zero values can be told apart from instances built
// through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil
// error for an object that was not built by its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as built by its constructor.
//
// Embed it as an unexported field and set it from the constructor only:
//
//	type AssignDriverCommand struct {
//	    routeID    kernel.UUID
//	    employeeID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewAssignDriverCommand(routeID, employeeID kernel.UUID) (AssignDriverCommand, error) {
//	    // validation...
//	    return AssignDriverCommand{routeID: routeID, employeeID: employeeID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c AssignDriverCommand) Validate() error {
//	    return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
