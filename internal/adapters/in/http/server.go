package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handlers are the use cases the API exposes.
type Handlers struct {
	RegisterClient        commands.RegisterClientCommandHandler
	UploadClientIDPhoto   commands.UploadClientIDPhotoCommandHandler
	CreateProduct         commands.CreateProductCommandHandler
	CreateOrder           commands.CreateOrderCommandHandler
	UpdateOrder           commands.UpdateOrderCommandHandler
	DeleteOrder           commands.DeleteOrderCommandHandler
	CreateRouteDefinition commands.CreateRouteDefinitionCommandHandler
	CreateRoute           commands.CreateRouteCommandHandler
	AssignDriver          commands.AssignDriverCommandHandler
	DeleteRoute           commands.DeleteRouteCommandHandler
	CreateTaskFromOrder   commands.CreateTaskFromOrderCommandHandler
	CreateTask            commands.CreateTaskCommandHandler
	UpdateTaskStatus      commands.UpdateTaskStatusCommandHandler
	DeleteTask            commands.DeleteTaskCommandHandler
	AddTaskPhoto          commands.AddTaskPhotoCommandHandler
	DeleteTaskPhoto       commands.DeleteTaskPhotoCommandHandler
	RegisterEmployee      commands.RegisterEmployeeCommandHandler
	EnsureRole            commands.EnsureRoleCommandHandler
	DeleteEmployee        commands.DeleteEmployeeCommandHandler

	GetClient            queries.GetClientQueryHandler
	ListClients          queries.ListClientsQueryHandler
	ListProducts         queries.ListProductsQueryHandler
	GetOrder             queries.GetOrderQueryHandler
	ListOrders           queries.ListOrdersQueryHandler
	ListRouteDefinitions queries.ListRouteDefinitionsQueryHandler
	GetRoute             queries.GetRouteQueryHandler
	ListRoutes           queries.ListRoutesQueryHandler
	GetTask              queries.GetTaskQueryHandler
	ListTasks            queries.ListTasksQueryHandler
	OrderHasTask         queries.OrderHasTaskQueryHandler
	GetEmployee          queries.GetEmployeeQueryHandler
	ListEmployees        queries.ListEmployeesQueryHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h      Handlers
	logger *zap.Logger
}

func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{h: handlers, logger: logger.Named("http")}
}

// statusFor maps the error sentinels of the core onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrTransitionIsNotAllowed):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Internal errors are logged and their
// text is not sent to the client.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("path", ctx.Path()),
			zap.Error(err),
		)
		return ctx.JSON(status, Error{Code: status, Message: http.StatusText(status)})
	}
	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

// badRequest is returned to echo, which writes the Error body.
func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// decode binds and validates a JSON body.
func decode(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return badRequest("Invalid request body")
	}
	if err := ctx.Validate(body); err != nil {
		return badRequest(err.Error())
	}
	return nil
}

func created(ctx echo.Context, status int, id openapiID) error {
	return ctx.JSON(status, Created{Id: id})
}
