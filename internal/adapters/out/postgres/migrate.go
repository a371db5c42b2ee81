package postgres

import (
	"dispatch/internal/adapters/out/postgres/catalogrepo"
	"dispatch/internal/adapters/out/postgres/clientrepo"
	"dispatch/internal/adapters/out/postgres/employeerepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/routerepo"
	"dispatch/internal/adapters/out/postgres/taskrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table of the dispatch schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&clientrepo.ClientDTO{},
		&catalogrepo.ProductDTO{},
		&orderrepo.RouteDefinitionDTO{},
		&orderrepo.OrderDTO{},
		&employeerepo.RoleDTO{},
		&employeerepo.EmployeeDTO{},
		&routerepo.RouteDTO{},
		&taskrepo.TaskDTO{},
		&taskrepo.PhotoDTO{},
	)
}
