package http

import (
	"net/http"
	"strings"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListEmployees handles GET /api/v1/employees with the optional ?role= filter.
func (s *Server) ListEmployees(ctx echo.Context) error {
	query := queries.NewListEmployeesQuery()
	if role := strings.TrimSpace(ctx.QueryParam("role")); role != "" {
		var err error
		if query, err = queries.NewListEmployeesByRoleQuery(role); err != nil {
			return s.fail(ctx, err)
		}
	}
	return s.listEmployees(ctx, query)
}

// ListDrivers handles GET /api/v1/drivers with the optional ?county= filter.
func (s *Server) ListDrivers(ctx echo.Context) error {
	query := queries.NewListDriversQuery()
	if county := strings.TrimSpace(ctx.QueryParam("county")); county != "" {
		var err error
		if query, err = queries.NewListDriversByCountyQuery(county); err != nil {
			return s.fail(ctx, err)
		}
	}
	return s.listEmployees(ctx, query)
}

func (s *Server) listEmployees(ctx echo.Context, query queries.ListEmployeesQuery) error {
	employees, err := s.h.ListEmployees.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Employee, len(employees))
	for i, e := range employees {
		response[i] = toEmployee(e)
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterEmployee handles POST /api/v1/employees.
func (s *Server) RegisterEmployee(ctx echo.Context) error {
	var body NewEmployee
	if err := decode(ctx, &body); err != nil {
		return err
	}

	employeeID := kernel.NewUUID()
	cmd, err := commands.NewRegisterEmployeeCommand(employeeID, body.Email, body.Password,
		body.Name, body.Phone, body.County, body.Roles)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.RegisterEmployee.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return created(ctx, http.StatusCreated, fromKernel(employeeID))
}

// GetEmployee handles GET /api/v1/employees/{employeeId}.
func (s *Server) GetEmployee(ctx echo.Context) error {
	employeeID, err := pathUUID(ctx, "employeeId")
	if err != nil {
		return badRequest(err.Error())
	}

	query, err := queries.NewGetEmployeeQuery(employeeID)
	if err != nil {
		return s.fail(ctx, err)
	}

	e, err := s.h.GetEmployee.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toEmployee(e))
}

// DeleteEmployee handles DELETE /api/v1/employees/{employeeId}.
func (s *Server) DeleteEmployee(ctx echo.Context) error {
	employeeID, err := pathUUID(ctx, "employeeId")
	if err != nil {
		return badRequest(err.Error())
	}

	cmd, err := commands.NewDeleteEmployeeCommand(employeeID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.DeleteEmployee.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// EnsureRole handles POST /api/v1/roles. It answers 200 with the id of the
// existing or new role.
func (s *Server) EnsureRole(ctx echo.Context) error {
	var body NewRole
	if err := decode(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewEnsureRoleCommand(body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	roleID, err := s.h.EnsureRole.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return created(ctx, http.StatusOK, fromKernel(roleID))
}

func toEmployee(e queries.EmployeeResponse) Employee {
	roles := e.Roles
	if roles == nil {
		roles = []string{}
	}
	return Employee{
		Id:     fromKernel(e.ID),
		Email:  e.Email,
		Name:   e.Name,
		Phone:  e.Phone,
		County: e.County,
		Roles:  roles,
	}
}
