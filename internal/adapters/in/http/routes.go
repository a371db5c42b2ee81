package http

import (
	"net/http"
	"strings"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListRoutes handles GET /api/v1/routes with the optional filters
// ?employeeId= and ?county=. employeeId wins when both are given.
func (s *Server) ListRoutes(ctx echo.Context) error {
	employeeID, err := queryUUID(ctx, "employeeId")
	if err != nil {
		return badRequest(err.Error())
	}
	county := strings.TrimSpace(ctx.QueryParam("county"))

	query := queries.NewListRoutesQuery()
	switch {
	case employeeID != nil:
		query, err = queries.NewListRoutesByEmployeeQuery(*employeeID)
	case county != "":
		query, err = queries.NewListRoutesByCountyQuery(county)
	}
	if err != nil {
		return s.fail(ctx, err)
	}

	routes, err := s.h.ListRoutes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Route, len(routes))
	for i, r := range routes {
		response[i] = toRoute(r)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateRoute handles POST /api/v1/routes.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var body NewRoute
	if err := decode(ctx, &body); err != nil {
		return err
	}

	employeeID, err := toKernel(body.EmployeeId)
	if err != nil {
		return s.fail(ctx, err)
	}

	routeID := kernel.NewUUID()
	cmd, err := commands.NewCreateRouteCommand(routeID, body.Date.Time, employeeID, body.County)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.CreateRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return created(ctx, http.StatusCreated, fromKernel(routeID))
}

// GetRoute handles GET /api/v1/routes/{routeId}.
func (s *Server) GetRoute(ctx echo.Context) error {
	routeID, err := pathUUID(ctx, "routeId")
	if err != nil {
		return badRequest(err.Error())
	}

	query, err := queries.NewGetRouteQuery(routeID)
	if err != nil {
		return s.fail(ctx, err)
	}

	r, err := s.h.GetRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toRoute(r))
}

// DeleteRoute handles DELETE /api/v1/routes/{routeId}.
func (s *Server) DeleteRoute(ctx echo.Context) error {
	routeID, err := pathUUID(ctx, "routeId")
	if err != nil {
		return badRequest(err.Error())
	}

	cmd, err := commands.NewDeleteRouteCommand(routeID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.DeleteRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles PUT /api/v1/routes/{routeId}/driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	routeID, err := pathUUID(ctx, "routeId")
	if err != nil {
		return badRequest(err.Error())
	}

	var body AssignDriver
	if err := decode(ctx, &body); err != nil {
		return err
	}
	employeeID, err := toKernel(body.EmployeeId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(routeID, employeeID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.AssignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func toRoute(r queries.RouteResponse) Route {
	route := Route{
		Id:           fromKernel(r.ID),
		Date:         openapi_types.Date{Time: r.Date},
		EmployeeId:   fromKernel(r.EmployeeID),
		EmployeeName: r.EmployeeName,
		County:       r.County,
		TaskCount:    r.TaskCount,
	}
	if r.Tasks != nil {
		route.Tasks = make([]Task, len(r.Tasks))
		for i, t := range r.Tasks {
			route.Tasks[i] = toTask(t)
		}
	}
	return route
}
