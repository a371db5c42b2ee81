package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const routeSelect = `
	SELECT
		r.id, r.date, r.employee_id, COALESCE(e.name, ''), r.county,
		(SELECT COUNT(*) FROM tasks t WHERE t.route_id = r.id)
	FROM routes r
	LEFT JOIN employees e ON e.id = r.employee_id`

// GetRouteQueryHandler reads the route row, its tasks and their photos in
// one transaction so the task list matches the route it was read with.
type GetRouteQueryHandler struct {
	db *gorm.DB
}

func NewGetRouteQueryHandler(db *gorm.DB) GetRouteQueryHandler {
	return GetRouteQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError for an unknown route.
func (h GetRouteQueryHandler) Handle(ctx context.Context, query GetRouteQuery) (RouteResponse, error) {
	if err := query.Validate(); err != nil {
		return RouteResponse{}, err
	}

	var result RouteResponse
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, err := scanRoute(tx.Raw(routeSelect+` WHERE r.id = ?`, query.RouteID().Bytes()).Row())
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.NewObjectNotFoundError("route", query.RouteID().String())
			}
			return err
		}

		r.Tasks, err = loadTasks(tx, taskSelect+` WHERE route_id = ? ORDER BY seq, id`, query.RouteID().Bytes())
		if err != nil {
			return err
		}

		result = r
		return nil
	})
	if err != nil {
		return RouteResponse{}, err
	}

	return result, nil
}

func scanRoute(row rowScanner) (RouteResponse, error) {
	var r RouteResponse
	var id, employeeID uuid.UUID

	if err := row.Scan(&id, &r.Date, &employeeID, &r.EmployeeName, &r.County, &r.TaskCount); err != nil {
		return RouteResponse{}, err
	}

	var err error
	if r.ID, err = toUUID(id); err != nil {
		return RouteResponse{}, err
	}
	if r.EmployeeID, err = toUUID(employeeID); err != nil {
		return RouteResponse{}, err
	}

	return r, nil
}
