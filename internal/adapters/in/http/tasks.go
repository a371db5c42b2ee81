package http

import (
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/task"

	"github.com/labstack/echo/v4"
)

// CreateTaskFromOrder handles POST /api/v1/orders/{orderId}/task. A second
// dispatch of the same order is a conflict.
func (s *Server) CreateTaskFromOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(err.Error())
	}

	var body DispatchOrder
	if err := decode(ctx, &body); err != nil {
		return err
	}
	routeID, err := toKernel(body.RouteId)
	if err != nil {
		return s.fail(ctx, err)
	}

	taskID := kernel.NewUUID()
	cmd, err := commands.NewCreateTaskFromOrderCommand(taskID, orderID, routeID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.CreateTaskFromOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return created(ctx, http.StatusCreated, fromKernel(taskID))
}

// OrderHasTask handles GET /api/v1/orders/{orderId}/task.
func (s *Server) OrderHasTask(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(err.Error())
	}

	query, err := queries.NewOrderHasTaskQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.h.OrderHasTask.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, OrderTask{
		HasTask: res.HasTask,
		TaskId:  fromOptionalKernel(res.TaskID),
		RouteId: fromOptionalKernel(res.RouteID),
	})
}

// ListTasks handles GET /api/v1/tasks.
func (s *Server) ListTasks(ctx echo.Context) error {
	return s.listTasks(ctx, queries.NewListTasksQuery())
}

// ListTasksByRoute handles GET /api/v1/routes/{routeId}/tasks.
func (s *Server) ListTasksByRoute(ctx echo.Context) error {
	routeID, err := pathUUID(ctx, "routeId")
	if err != nil {
		return badRequest(err.Error())
	}

	query, err := queries.NewListTasksByRouteQuery(routeID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.listTasks(ctx, query)
}

func (s *Server) listTasks(ctx echo.Context, query queries.ListTasksQuery) error {
	tasks, err := s.h.ListTasks.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Task, len(tasks))
	for i, t := range tasks {
		response[i] = toTask(t)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateTask handles POST /api/v1/routes/{routeId}/tasks.
func (s *Server) CreateTask(ctx echo.Context) error {
	routeID, err := pathUUID(ctx, "routeId")
	if err != nil {
		return badRequest(err.Error())
	}

	var body NewTask
	if err := decode(ctx, &body); err != nil {
		return err
	}

	var scheduled time.Time
	if body.ScheduledTime != nil {
		scheduled = *body.ScheduledTime
	}

	taskID := kernel.NewUUID()
	cmd, err := commands.NewCreateTaskCommand(taskID, routeID, body.Type, scheduled, task.Details{
		Address:       body.Address,
		ClientName:    body.ClientName,
		ClientPhone:   body.ClientPhone,
		InternalNotes: body.InternalNotes,
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.CreateTask.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return created(ctx, http.StatusCreated, fromKernel(taskID))
}

// GetTask handles GET /api/v1/tasks/{taskId}.
func (s *Server) GetTask(ctx echo.Context) error {
	taskID, err := pathUUID(ctx, "taskId")
	if err != nil {
		return badRequest(err.Error())
	}

	query, err := queries.NewGetTaskQuery(taskID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.getTask(ctx, query)
}

// GetTaskByOrder handles GET /api/v1/tasks/by-order/{orderId}.
func (s *Server) GetTaskByOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(err.Error())
	}

	query, err := queries.NewGetTaskByOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.getTask(ctx, query)
}

func (s *Server) getTask(ctx echo.Context, query queries.GetTaskQuery) error {
	t, err := s.h.GetTask.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toTask(t))
}

// UpdateTaskStatus handles PATCH /api/v1/tasks/{taskId}/status.
func (s *Server) UpdateTaskStatus(ctx echo.Context) error {
	taskID, err := pathUUID(ctx, "taskId")
	if err != nil {
		return badRequest(err.Error())
	}

	var body TaskStatus
	if err := decode(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateTaskStatusCommand(taskID, body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.UpdateTaskStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteTask handles DELETE /api/v1/tasks/{taskId}.
func (s *Server) DeleteTask(ctx echo.Context) error {
	taskID, err := pathUUID(ctx, "taskId")
	if err != nil {
		return badRequest(err.Error())
	}

	cmd, err := commands.NewDeleteTaskCommand(taskID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.DeleteTask.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddTaskPhoto handles POST /api/v1/tasks/{taskId}/photos.
func (s *Server) AddTaskPhoto(ctx echo.Context) error {
	taskID, err := pathUUID(ctx, "taskId")
	if err != nil {
		return badRequest(err.Error())
	}

	file, err := readUpload(ctx)
	if err != nil {
		return badRequest(err.Error())
	}

	photoID := kernel.NewUUID()
	cmd, err := commands.NewAddTaskPhotoCommand(taskID, photoID, file.data, file.name, file.contentType,
		ctx.FormValue("description"))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.AddTaskPhoto.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return created(ctx, http.StatusCreated, fromKernel(photoID))
}

// DeleteTaskPhoto handles DELETE /api/v1/tasks/{taskId}/photos/{photoId}.
func (s *Server) DeleteTaskPhoto(ctx echo.Context) error {
	taskID, err := pathUUID(ctx, "taskId")
	if err != nil {
		return badRequest(err.Error())
	}
	photoID, err := pathUUID(ctx, "photoId")
	if err != nil {
		return badRequest(err.Error())
	}

	cmd, err := commands.NewDeleteTaskPhotoCommand(taskID, photoID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.DeleteTaskPhoto.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func toTask(t queries.TaskResponse) Task {
	photos := make([]Photo, len(t.Photos))
	for i, p := range t.Photos {
		photos[i] = Photo{Id: fromKernel(p.ID), ImageUrl: p.ImageURL, Description: p.Description}
	}
	return Task{
		Id:            fromKernel(t.ID),
		RouteId:       fromKernel(t.RouteID),
		OrderId:       fromOptionalKernel(t.OrderID),
		Type:          t.Type,
		ScheduledTime: t.ScheduledTime,
		Status:        t.Status,
		Address:       t.Address,
		ClientName:    t.ClientName,
		ClientPhone:   t.ClientPhone,
		InternalNotes: t.InternalNotes,
		Photos:        photos,
	}
}
