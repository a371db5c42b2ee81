package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderHasTaskQueryHandler struct {
	db *gorm.DB
}

func NewOrderHasTaskQueryHandler(db *gorm.DB) OrderHasTaskQueryHandler {
	return OrderHasTaskQueryHandler{db: db}
}

// Handle never fails for an unknown order; it reports HasTask false.
func (h OrderHasTaskQueryHandler) Handle(ctx context.Context, query OrderHasTaskQuery) (OrderHasTaskResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderHasTaskResponse{}, err
	}

	var taskID, routeID uuid.UUID
	err := h.db.WithContext(ctx).
		Raw(`SELECT id, route_id FROM tasks WHERE order_id = ?`, query.OrderID().Bytes()).
		Row().
		Scan(&taskID, &routeID)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderHasTaskResponse{}, nil
	}
	if err != nil {
		return OrderHasTaskResponse{}, err
	}

	task, err := toUUID(taskID)
	if err != nil {
		return OrderHasTaskResponse{}, err
	}
	route, err := toUUID(routeID)
	if err != nil {
		return OrderHasTaskResponse{}, err
	}

	return OrderHasTaskResponse{HasTask: true, TaskID: &task, RouteID: &route}, nil
}
