package queries

import (
	"context"

	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const taskSelect = `
	SELECT
		id, route_id, order_id, task_type, scheduled_time, status,
		address, client_name, client_phone, internal_notes
	FROM tasks`

type GetTaskQueryHandler struct {
	db *gorm.DB
}

func NewGetTaskQueryHandler(db *gorm.DB) GetTaskQueryHandler {
	return GetTaskQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError when no task matches.
func (h GetTaskQueryHandler) Handle(ctx context.Context, query GetTaskQuery) (TaskResponse, error) {
	if err := query.Validate(); err != nil {
		return TaskResponse{}, err
	}

	where, id, subject := ` WHERE id = ?`, query.taskID, "task"
	if id == nil {
		where, id, subject = ` WHERE order_id = ?`, query.orderID, "task for order"
	}

	var result TaskResponse
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tasks, err := loadTasks(tx, taskSelect+where, id.Bytes())
		if err != nil {
			return err
		}
		if len(tasks) == 0 {
			return errs.NewObjectNotFoundError(subject, id.String())
		}
		result = tasks[0]
		return nil
	})
	if err != nil {
		return TaskResponse{}, err
	}

	return result, nil
}

// loadTasks runs a task select and attaches the photos of every returned
// task, oldest first.
func loadTasks(db *gorm.DB, sqlText string, args ...any) ([]TaskResponse, error) {
	rows, err := db.Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]TaskResponse, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var t TaskResponse
		var id, routeID uuid.UUID
		var orderID uuid.NullUUID

		err = rows.Scan(
			&id, &routeID, &orderID, &t.Type, &t.ScheduledTime, &t.Status,
			&t.Address, &t.ClientName, &t.ClientPhone, &t.InternalNotes,
		)
		if err != nil {
			return nil, err
		}

		if t.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if t.RouteID, err = toUUID(routeID); err != nil {
			return nil, err
		}
		if t.OrderID, err = toOptionalUUID(orderID); err != nil {
			return nil, err
		}

		t.Photos = make([]PhotoResponse, 0)
		index[id] = len(tasks)
		tasks = append(tasks, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(tasks) == 0 {
		return tasks, nil
	}

	ids := make([]uuid.UUID, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}

	photoRows, err := db.Raw(`
		SELECT id, task_id, image_url, description
		FROM task_photos
		WHERE task_id IN ?
		ORDER BY seq, id
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer photoRows.Close()

	for photoRows.Next() {
		var p PhotoResponse
		var id, taskID uuid.UUID
		if err = photoRows.Scan(&id, &taskID, &p.ImageURL, &p.Description); err != nil {
			return nil, err
		}
		if p.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if i, ok := index[taskID]; ok {
			tasks[i].Photos = append(tasks[i].Photos, p)
		}
	}

	if err = photoRows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
