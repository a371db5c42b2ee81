// Package catalog holds the products and service packets clients can order.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ListCacheKey is the cache entry holding the product listing.
const ListCacheKey = "catalog:products"

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	ErrNameIsRequired          = errs.NewValueIsRequiredError("name")
)

// Product is immutable reference data.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       decimal.Decimal
	guard       guard.ConstructorGuard
}

// NewProduct creates a product. The price must not be negative.
func NewProduct(id kernel.UUID, name, description string, price decimal.Decimal) (*Product, error) {
	p := &Product{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price.String()))
	}
	p.price = price
	return nil
}
