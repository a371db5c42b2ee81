package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// CreateOrderCommandHandler resolves the order's references and persists it.
// The client must exist; the product and the route definition must exist
// when the payload names them. All lookups and the insert share one
// transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewCreateOrderCommandHandler creates a handler for order registration.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns an ObjectNotFoundError naming the first reference that
// could not be resolved.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.ClientRepository().Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	payload := cmd.Payload()
	if err = resolveOrderReferences(ctx, uow, payload); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	number := cmd.Number()
	if number == 0 {
		if number, err = orderRepo.NextNumber(ctx); err != nil {
			return err
		}
	}

	date := cmd.Date()
	if date.IsZero() {
		date = h.clock.Now()
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		number,
		date,
		c.ID(),
		payload.ProductID,
		payload.RouteDefinitionID,
		payload.Type,
		payload.Details,
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolveOrderReferences checks that the optional product and route
// definition named by payload exist.
func resolveOrderReferences(ctx context.Context, uow OrderUoW, payload OrderPayload) error {
	if payload.ProductID != nil {
		if _, err := uow.ProductRepository().Get(ctx, *payload.ProductID); err != nil {
			return err
		}
	}

	if payload.RouteDefinitionID != nil {
		if _, err := uow.RouteDefinitionRepository().Get(ctx, *payload.RouteDefinitionID); err != nil {
			return err
		}
	}

	return nil
}
