package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. The order number must be unused.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a revised order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier or returns an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order. Tasks referencing it must have been detached
	// in the same transaction.
	Delete(ctx context.Context, id kernel.UUID) error

	// NextNumber returns the number following the highest order number in
	// use, 1 for an empty ledger.
	NextNumber(ctx context.Context) (int64, error)
}

// RouteDefinitionRepository defines the persistence contract for named rounds.
type RouteDefinitionRepository interface {
	Add(ctx context.Context, definition *order.RouteDefinition) error
	Get(ctx context.Context, id kernel.UUID) (*order.RouteDefinition, error)
}
