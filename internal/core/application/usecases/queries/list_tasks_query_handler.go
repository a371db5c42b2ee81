package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListTasksQueryHandler struct {
	db *gorm.DB
}

func NewListTasksQueryHandler(db *gorm.DB) ListTasksQueryHandler {
	return ListTasksQueryHandler{db: db}
}

// Handle returns an empty list for a route without tasks, including an
// unknown route.
func (h ListTasksQueryHandler) Handle(ctx context.Context, query ListTasksQuery) ([]TaskResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := taskSelect
	var args []any
	if query.routeID != nil {
		sqlText += ` WHERE route_id = ?`
		args = append(args, query.routeID.Bytes())
	}
	sqlText += ` ORDER BY seq, id`

	var tasks []TaskResponse
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		tasks, err = loadTasks(tx, sqlText, args...)
		return err
	})
	if err != nil {
		return nil, err
	}

	return tasks, nil
}
