// Package order provides the Order aggregate and the RouteDefinition it can
// be filed under.
//
// An order records what a client bought and the service attributes of the
// purchase (quantity, duration, dates, location, sanitation frequency).
// The dispatch workflow turns an order into at most one task; the order
// itself never changes state when that happens.
package order
