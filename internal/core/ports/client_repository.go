// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work, the photo store, the event
// publisher and the cache.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/catalog"
	"dispatch/internal/core/domain/model/client"
	"dispatch/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for clients.
type ClientRepository interface {
	Add(ctx context.Context, aggregate *client.Client) error
	Update(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client by identifier or returns an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)
}

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	Add(ctx context.Context, product *catalog.Product) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)
}
