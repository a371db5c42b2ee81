package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListProductsQueryIsNotConstructed = errors.New("ListProductsQuery must be created via NewListProductsQuery constructor")

// ListProductsQuery lists the catalog ordered by name.
type ListProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

type ProductResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       decimal.Decimal
}
