// Package errs provides standardized error types for the dispatch application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes the error types the core reports:
//   - ObjectNotFoundError: a referenced client, product, order, route, employee or task does not exist
//   - ObjectAlreadyExistsError: a uniqueness rule is violated (an order that already has a task,
//     an employee email that is taken)
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed (for example an unknown task status name)
//   - TransitionIsNotAllowedError: a state machine refuses a transition
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works on the category
package errs
