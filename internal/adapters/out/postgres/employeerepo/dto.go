// Package employeerepo persists employees and the roles they hold.
package employeerepo

import (
	"time"

	"dispatch/internal/core/domain/model/employee"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EmployeeDTO is the row of the employees table. Roles are linked through
// employee_role_links.
type EmployeeDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(64)"`
	County       string    `gorm:"type:varchar(64);index"`
	CreatedAt    time.Time
	Roles        []RoleDTO `gorm:"many2many:employee_role_links;joinForeignKey:EmployeeID;joinReferences:RoleID"`
}

func (EmployeeDTO) TableName() string {
	return "employees"
}

// RoleDTO is the row of the employee_roles table.
type RoleDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(64);not null;uniqueIndex"`
}

func (RoleDTO) TableName() string {
	return "employee_roles"
}

func fromDomain(e *employee.Employee) EmployeeDTO {
	dto := EmployeeDTO{
		ID:           e.ID().Bytes(),
		Email:        e.Email(),
		PasswordHash: e.Password().Hash(),
		Name:         e.Name(),
		Phone:        e.Phone(),
		County:       e.County(),
	}

	for _, r := range e.Roles() {
		dto.Roles = append(dto.Roles, roleFromDomain(r))
	}

	return dto
}

func toDomain(dto EmployeeDTO) (*employee.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	password, err := employee.RestorePassword(dto.PasswordHash)
	if err != nil {
		return nil, err
	}

	roles := make([]*employee.Role, 0, len(dto.Roles))
	for _, r := range dto.Roles {
		role, roleErr := roleToDomain(r)
		if roleErr != nil {
			return nil, roleErr
		}
		roles = append(roles, role)
	}

	return employee.RestoreEmployee(id, dto.Email, password, dto.Name, dto.Phone, dto.County, roles)
}

func roleFromDomain(r *employee.Role) RoleDTO {
	return RoleDTO{
		ID:   r.ID().Bytes(),
		Name: r.Name(),
	}
}

func roleToDomain(dto RoleDTO) (*employee.Role, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return employee.NewRole(id, dto.Name)
}
