package http

import (
	"errors"
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListOrders handles GET /api/v1/orders, optionally filtered by ?clientId=.
func (s *Server) ListOrders(ctx echo.Context) error {
	clientID, err := queryUUID(ctx, "clientId")
	if err != nil {
		return badRequest(err.Error())
	}

	query := queries.NewListOrdersQuery()
	if clientID != nil {
		if query, err = queries.NewListOrdersByClientQuery(*clientID); err != nil {
			return s.fail(ctx, err)
		}
	}
	return s.listOrders(ctx, query)
}

// ListOrdersByRouteDefinition handles GET /api/v1/route-definitions/{definitionId}/orders.
func (s *Server) ListOrdersByRouteDefinition(ctx echo.Context) error {
	definitionID, err := pathUUID(ctx, "definitionId")
	if err != nil {
		return badRequest(err.Error())
	}

	query, err := queries.NewListOrdersByRouteDefinitionQuery(definitionID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.listOrders(ctx, query)
}

func (s *Server) listOrders(ctx echo.Context, query queries.ListOrdersQuery) error {
	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := decode(ctx, &body); err != nil {
		return err
	}

	clientID, err := toKernel(body.ClientId)
	if err != nil {
		return s.fail(ctx, err)
	}
	payload, err := toOrderPayload(body.OrderPayload)
	if err != nil {
		return s.fail(ctx, err)
	}

	var date time.Time
	if body.Date != nil {
		date = *body.Date
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, clientID, body.Number, date, payload)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return created(ctx, http.StatusCreated, fromKernel(orderID))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// UpdateOrder handles PUT /api/v1/orders/{orderId}.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(err.Error())
	}

	var body OrderPayload
	if err := decode(ctx, &body); err != nil {
		return err
	}
	payload, err := toOrderPayload(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, payload)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListRouteDefinitions handles GET /api/v1/route-definitions.
func (s *Server) ListRouteDefinitions(ctx echo.Context) error {
	definitions, err := s.h.ListRouteDefinitions.Handle(ctx.Request().Context(), queries.NewListRouteDefinitionsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]RouteDefinition, len(definitions))
	for i, d := range definitions {
		response[i] = RouteDefinition{Id: fromKernel(d.ID), Name: d.Name, City: d.City}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateRouteDefinition handles POST /api/v1/route-definitions.
func (s *Server) CreateRouteDefinition(ctx echo.Context) error {
	var body NewRouteDefinition
	if err := decode(ctx, &body); err != nil {
		return err
	}

	definitionID := kernel.NewUUID()
	cmd, err := commands.NewCreateRouteDefinitionCommand(definitionID, body.Name, body.City)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.CreateRouteDefinition.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return created(ctx, http.StatusCreated, fromKernel(definitionID))
}

func toOrderPayload(body OrderPayload) (commands.OrderPayload, error) {
	productID, productErr := toOptionalKernel(body.ProductId)
	definitionID, definitionErr := toOptionalKernel(body.RouteDefinitionId)
	if err := errors.Join(productErr, definitionErr); err != nil {
		return commands.OrderPayload{}, err
	}

	d := body.Details
	return commands.OrderPayload{
		ProductID:         productID,
		RouteDefinitionID: definitionID,
		Type:              body.Type,
		Details: order.Details{
			Quantity:            d.Quantity,
			Indefinite:          d.Indefinite,
			DurationDays:        d.DurationDays,
			StartDate:           fromDate(d.StartDate),
			EndDate:             fromDate(d.EndDate),
			Location:            d.Location,
			Contact:             d.Contact,
			SanitationFrequency: d.SanitationFrequency,
			Notes:               d.Notes,
		},
	}, nil
}

func toOrder(o queries.OrderResponse) Order {
	d := o.Details
	return Order{
		OrderPayload: OrderPayload{
			ProductId:         fromOptionalKernel(o.ProductID),
			RouteDefinitionId: fromOptionalKernel(o.RouteDefinitionID),
			Type:              o.Type,
			Details: OrderDetails{
				Quantity:            d.Quantity,
				Indefinite:          d.Indefinite,
				DurationDays:        d.DurationDays,
				StartDate:           toDate(d.StartDate),
				EndDate:             toDate(d.EndDate),
				Location:            d.Location,
				Contact:             d.Contact,
				SanitationFrequency: d.SanitationFrequency,
				Notes:               d.Notes,
			},
		},
		Id:         fromKernel(o.ID),
		Number:     o.Number,
		Date:       o.Date,
		ClientId:   fromKernel(o.ClientID),
		ClientName: o.ClientName,
	}
}

func fromDate(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func toDate(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}
