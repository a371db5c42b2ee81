package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const orderSelect = `
	SELECT
		o.id, o.number, o.date, o.client_id,
		COALESCE(CASE WHEN c.kind = 'COMPANY' THEN c.legal_name ELSE c.full_name END, ''),
		o.product_id, o.route_definition_id, o.order_type,
		o.quantity, o.indefinite, o.duration_days, o.start_date, o.end_date,
		o.location, o.contact, o.sanitation_frequency, o.notes
	FROM orders o
	LEFT JOIN clients c ON c.id = o.client_id`

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError for an unknown order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(orderSelect+` WHERE o.id = ?`, query.OrderID().Bytes()).Row()
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	return o, nil
}

func scanOrder(row rowScanner) (OrderResponse, error) {
	var o OrderResponse
	var id, clientID uuid.UUID
	var productID, routeDefinitionID uuid.NullUUID
	var start, end sql.NullTime

	err := row.Scan(
		&id, &o.Number, &o.Date, &clientID, &o.ClientName,
		&productID, &routeDefinitionID, &o.Type,
		&o.Details.Quantity, &o.Details.Indefinite, &o.Details.DurationDays, &start, &end,
		&o.Details.Location, &o.Details.Contact, &o.Details.SanitationFrequency, &o.Details.Notes,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if o.ID, err = toUUID(id); err != nil {
		return OrderResponse{}, err
	}
	if o.ClientID, err = toUUID(clientID); err != nil {
		return OrderResponse{}, err
	}
	if o.ProductID, err = toOptionalUUID(productID); err != nil {
		return OrderResponse{}, err
	}
	if o.RouteDefinitionID, err = toOptionalUUID(routeDefinitionID); err != nil {
		return OrderResponse{}, err
	}

	if start.Valid {
		o.Details.StartDate = &start.Time
	}
	if end.Valid {
		o.Details.EndDate = &end.Time
	}

	return o, nil
}
