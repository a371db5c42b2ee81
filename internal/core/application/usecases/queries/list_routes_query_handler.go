package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListRoutesQueryHandler reads the routes and, for the employee and county
// listings, their tasks with photos in the same transaction.
type ListRoutesQueryHandler struct {
	db *gorm.DB
}

func NewListRoutesQueryHandler(db *gorm.DB) ListRoutesQueryHandler {
	return ListRoutesQueryHandler{db: db}
}

func (h ListRoutesQueryHandler) Handle(ctx context.Context, query ListRoutesQuery) ([]RouteResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := routeSelect
	var args []any
	withTasks := true
	switch {
	case query.employeeID != nil:
		sqlText += ` WHERE r.employee_id = ?`
		args = append(args, query.employeeID.Bytes())
	case query.county != "":
		sqlText += ` WHERE LOWER(r.county) = LOWER(?)`
		args = append(args, query.county)
	default:
		withTasks = false
	}
	sqlText += ` ORDER BY r.date DESC, r.created_at, r.id`

	var routes []RouteResponse
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if routes, err = scanRoutes(tx, sqlText, args...); err != nil {
			return err
		}
		if !withTasks || len(routes) == 0 {
			return nil
		}
		return attachTasks(tx, routes)
	})
	if err != nil {
		return nil, err
	}

	return routes, nil
}

func scanRoutes(db *gorm.DB, sqlText string, args ...any) ([]RouteResponse, error) {
	rows, err := db.Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]RouteResponse, 0)
	for rows.Next() {
		r, scanErr := scanRoute(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		routes = append(routes, r)
	}

	return routes, rows.Err()
}

// attachTasks loads the tasks of all routes with one query and hands each
// route its own, in insertion order.
func attachTasks(db *gorm.DB, routes []RouteResponse) error {
	ids := make([]uuid.UUID, len(routes))
	byRoute := make(map[uuid.UUID]int, len(routes))
	for i := range routes {
		ids[i] = routes[i].ID.Bytes()
		byRoute[ids[i]] = i
		routes[i].Tasks = make([]TaskResponse, 0, routes[i].TaskCount)
	}

	tasks, err := loadTasks(db, taskSelect+` WHERE route_id IN ? ORDER BY seq, id`, ids)
	if err != nil {
		return err
	}

	for _, t := range tasks {
		if i, ok := byRoute[t.RouteID.Bytes()]; ok {
			routes[i].Tasks = append(routes[i].Tasks, t)
		}
	}
	return nil
}
