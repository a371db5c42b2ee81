// Package routerepo persists routes. Tasks are stored by taskrepo; a route
// is always loaded with its complete task list.
package routerepo

import (
	"time"

	"dispatch/internal/adapters/out/postgres/taskrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/core/domain/model/task"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RouteDTO is the row of the routes table.
type RouteDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Date       datatypes.Date `gorm:"type:date;not null;index"`
	EmployeeID uuid.UUID      `gorm:"type:uuid;not null;index"`
	County     string         `gorm:"type:varchar(64);index"`
	CreatedAt  time.Time
}

func (RouteDTO) TableName() string {
	return "routes"
}

func fromDomain(r *route.Route) RouteDTO {
	return RouteDTO{
		ID:         r.ID().Bytes(),
		Date:       datatypes.Date(r.Date()),
		EmployeeID: r.EmployeeID().Bytes(),
		County:     r.County(),
	}
}

func toDomain(dto RouteDTO, taskDTOs []taskrepo.TaskDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	employeeID, err := kernel.UUIDFromBytes(dto.EmployeeID[:])
	if err != nil {
		return nil, err
	}

	tasks := make([]*task.Task, 0, len(taskDTOs))
	for _, t := range taskDTOs {
		restored, taskErr := taskrepo.ToDomain(t)
		if taskErr != nil {
			return nil, taskErr
		}
		tasks = append(tasks, restored)
	}

	return route.RestoreRoute(id, time.Time(dto.Date), employeeID, dto.County, tasks)
}
