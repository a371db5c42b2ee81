package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// EchoRouter is the part of echo.Echo and echo.Group routes are added to.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds the operations of openapi.yaml under router.
func RegisterHandlers(router EchoRouter, s *Server) {
	router.GET("/clients", s.ListClients)
	router.POST("/clients", s.RegisterClient)
	router.GET("/clients/:clientId", s.GetClient)
	router.POST("/clients/:clientId/id-photo", s.UploadClientIdPhoto)

	router.GET("/products", s.ListProducts)
	router.POST("/products", s.CreateProduct)

	router.GET("/route-definitions", s.ListRouteDefinitions)
	router.POST("/route-definitions", s.CreateRouteDefinition)
	router.GET("/route-definitions/:definitionId/orders", s.ListOrdersByRouteDefinition)

	router.GET("/orders", s.ListOrders)
	router.POST("/orders", s.CreateOrder)
	router.GET("/orders/:orderId", s.GetOrder)
	router.PUT("/orders/:orderId", s.UpdateOrder)
	router.DELETE("/orders/:orderId", s.DeleteOrder)
	router.GET("/orders/:orderId/task", s.OrderHasTask)
	router.POST("/orders/:orderId/task", s.CreateTaskFromOrder)

	router.GET("/routes", s.ListRoutes)
	router.POST("/routes", s.CreateRoute)
	router.GET("/routes/:routeId", s.GetRoute)
	router.DELETE("/routes/:routeId", s.DeleteRoute)
	router.PUT("/routes/:routeId/driver", s.AssignDriver)
	router.GET("/routes/:routeId/tasks", s.ListTasksByRoute)
	router.POST("/routes/:routeId/tasks", s.CreateTask)

	router.GET("/tasks", s.ListTasks)
	router.GET("/tasks/by-order/:orderId", s.GetTaskByOrder)
	router.GET("/tasks/:taskId", s.GetTask)
	router.DELETE("/tasks/:taskId", s.DeleteTask)
	router.PATCH("/tasks/:taskId/status", s.UpdateTaskStatus)
	router.POST("/tasks/:taskId/photos", s.AddTaskPhoto)
	router.DELETE("/tasks/:taskId/photos/:photoId", s.DeleteTaskPhoto)

	router.GET("/employees", s.ListEmployees)
	router.POST("/employees", s.RegisterEmployee)
	router.GET("/employees/:employeeId", s.GetEmployee)
	router.DELETE("/employees/:employeeId", s.DeleteEmployee)
	router.GET("/drivers", s.ListDrivers)
	router.POST("/roles", s.EnsureRole)
}

// NewEcho builds the web server: health check, API document, swagger UI
// and the API under /api/v1.
func NewEcho(s *Server, logger *zap.Logger) (*echo.Echo, error) {
	doc, err := LoadOpenAPI()
	if err != nil {
		return nil, err
	}
	if err := registerSwagger(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.Validator = NewRequestValidator()
	e.Use(RequestLogger(logger))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlers(e.Group("/api/v1"), s)
	return e, nil
}
