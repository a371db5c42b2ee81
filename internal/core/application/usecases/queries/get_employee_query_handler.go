package queries

import (
	"context"

	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const employeeSelect = `
	SELECT e.id, e.email, e.name, e.phone, e.county
	FROM employees e`

type GetEmployeeQueryHandler struct {
	db *gorm.DB
}

func NewGetEmployeeQueryHandler(db *gorm.DB) GetEmployeeQueryHandler {
	return GetEmployeeQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError for an unknown employee.
func (h GetEmployeeQueryHandler) Handle(ctx context.Context, query GetEmployeeQuery) (EmployeeResponse, error) {
	if err := query.Validate(); err != nil {
		return EmployeeResponse{}, err
	}

	employees, err := loadEmployees(h.db.WithContext(ctx), employeeSelect+` WHERE e.id = ?`, query.EmployeeID().Bytes())
	if err != nil {
		return EmployeeResponse{}, err
	}
	if len(employees) == 0 {
		return EmployeeResponse{}, errs.NewObjectNotFoundError("employee", query.EmployeeID().String())
	}

	return employees[0], nil
}

// loadEmployees runs an employee select and attaches role names sorted
// alphabetically.
func loadEmployees(db *gorm.DB, sqlText string, args ...any) ([]EmployeeResponse, error) {
	rows, err := db.Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]EmployeeResponse, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var e EmployeeResponse
		var id uuid.UUID
		if err = rows.Scan(&id, &e.Email, &e.Name, &e.Phone, &e.County); err != nil {
			return nil, err
		}
		if e.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		e.Roles = make([]string, 0)
		index[id] = len(employees)
		employees = append(employees, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(employees) == 0 {
		return employees, nil
	}

	ids := make([]uuid.UUID, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}

	roleRows, err := db.Raw(`
		SELECT l.employee_id, r.name
		FROM employee_role_links l
		JOIN employee_roles r ON r.id = l.role_id
		WHERE l.employee_id IN ?
		ORDER BY r.name
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer roleRows.Close()

	for roleRows.Next() {
		var employeeID uuid.UUID
		var name string
		if err = roleRows.Scan(&employeeID, &name); err != nil {
			return nil, err
		}
		if i, ok := index[employeeID]; ok {
			employees[i].Roles = append(employees[i].Roles, name)
		}
	}

	if err = roleRows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
