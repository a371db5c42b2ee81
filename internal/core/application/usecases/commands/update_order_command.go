package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand replaces the type, details and references of an
// order. The client, number and date never change.
type UpdateOrderCommand struct {
	orderID kernel.UUID
	payload OrderPayload

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(orderID kernel.UUID, payload OrderPayload) (UpdateOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), payload.validate()); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID: orderID,
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderCommand) Payload() OrderPayload {
	return c.payload
}
