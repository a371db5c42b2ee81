package commands

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderPayload carries the writable fields of an order shared by the
// create and update commands.
type OrderPayload struct {
	ProductID         *kernel.UUID
	RouteDefinitionID *kernel.UUID
	Type              string
	Details           order.Details
}

func (p OrderPayload) validate() error {
	var problems []error
	if p.ProductID != nil {
		problems = append(problems, p.ProductID.Validate())
	}
	if p.RouteDefinitionID != nil {
		problems = append(problems, p.RouteDefinitionID.Validate())
	}
	problems = append(problems, p.Details.Validate())
	return errors.Join(problems...)
}

// CreateOrderCommand registers a client's order in the ledger.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), clientID, 0, time.Time{},
//	    OrderPayload{ProductID: &productID, Type: "amplasare",
//	        Details: order.Details{Quantity: 2, Location: "46.18,21.31"}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, kernel.SystemClock{})
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct {
	orderID  kernel.UUID
	clientID kernel.UUID
	number   int64
	date     time.Time
	payload  OrderPayload

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order data.
//
// A zero number asks the handler to take the next free number, a zero date
// means the order is placed now.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	number int64,
	date time.Time,
	payload OrderPayload,
) (CreateOrderCommand, error) {
	var numberErr error
	if number < 0 {
		numberErr = errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%d is negative", number))
	}

	if err := errors.Join(orderID.Validate(), clientID.Validate(), numberErr, payload.validate()); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID:  orderID,
		clientID: clientID,
		number:   number,
		date:     date,
		payload:  payload,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Number is zero when the ledger should assign one.
func (c CreateOrderCommand) Number() int64 {
	return c.number
}

func (c CreateOrderCommand) Date() time.Time {
	return c.date
}

func (c CreateOrderCommand) Payload() OrderPayload {
	return c.payload
}
