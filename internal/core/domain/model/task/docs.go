// Package task provides the Task aggregate, the unit of field work the
// dispatch system schedules onto routes.
//
// The package includes:
//   - Task: the aggregate root, created from at most one order and owned by a route
//   - Photo: a picture attached to a task, owned by it
//   - Status: the lifecycle state machine NEW -> IN_PROGRESS -> COMPLETED, with CANCELLED
//   - Type: the kind of work (placement, pickup, sanitization, maintenance)
//   - Event: facts recorded by the aggregate and published after commit
//
// Key business rules:
//   - A new task always starts in NEW
//   - COMPLETED and CANCELLED are terminal
//   - Setting the status a task already has is a no-op
//   - Unknown order type tags map to PLACEMENT
package task
