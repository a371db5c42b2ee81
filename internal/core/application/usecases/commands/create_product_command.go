package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a product or service packet to the catalog.
type CreateProductCommand struct {
	productID   kernel.UUID
	name        string
	description string
	price       decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
) (CreateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		productID:   productID,
		name:        name,
		description: description,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) Description() string {
	return c.description
}

func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}
