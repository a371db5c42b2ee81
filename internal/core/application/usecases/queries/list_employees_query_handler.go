package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

type ListEmployeesQueryHandler struct {
	db *gorm.DB
}

func NewListEmployeesQueryHandler(db *gorm.DB) ListEmployeesQueryHandler {
	return ListEmployeesQueryHandler{db: db}
}

func (h ListEmployeesQueryHandler) Handle(ctx context.Context, query ListEmployeesQuery) ([]EmployeeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var conditions []string
	var args []any
	if query.role != "" {
		conditions = append(conditions, `EXISTS (
			SELECT 1
			FROM employee_role_links l
			JOIN employee_roles r ON r.id = l.role_id
			WHERE l.employee_id = e.id AND LOWER(r.name) = LOWER(?)
		)`)
		args = append(args, query.role)
	}
	if query.county != "" {
		conditions = append(conditions, `LOWER(e.county) = LOWER(?)`)
		args = append(args, query.county)
	}

	sqlText := employeeSelect
	if len(conditions) > 0 {
		sqlText += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	sqlText += ` ORDER BY e.name, e.id`

	return loadEmployees(h.db.WithContext(ctx), sqlText, args...)
}
