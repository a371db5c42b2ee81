package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrOrderHasTaskQueryIsNotConstructed = errors.New("OrderHasTaskQuery must be created via NewOrderHasTaskQuery constructor")

// OrderHasTaskQuery tells whether an order was already dispatched.
type OrderHasTaskQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewOrderHasTaskQuery(orderID kernel.UUID) (OrderHasTaskQuery, error) {
	if err := orderID.Validate(); err != nil {
		return OrderHasTaskQuery{}, err
	}
	return OrderHasTaskQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q OrderHasTaskQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q OrderHasTaskQuery) Validate() error {
	return q.guard.Validate(ErrOrderHasTaskQueryIsNotConstructed)
}

// OrderHasTaskResponse carries the task and its route when HasTask is set.
type OrderHasTaskResponse struct {
	HasTask bool
	TaskID  *kernel.UUID
	RouteID *kernel.UUID
}
