// Package services provides domain services that orchestrate business operations
// across multiple aggregates of the dispatch system.
//
// The package includes:
//   - TaskDispatcher: turns an order into the task a crew works on a route
//
// Domain services coordinate between aggregates, implementing business logic that
// does not naturally belong to a single aggregate root.
package services
