// Package taskrepo persists the task aggregate together with its photos.
package taskrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// TaskDTO is the row of the tasks table. OrderID carries a unique index so
// that at most one task can reference an order, whatever the number of
// concurrent writers.
type TaskDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RouteID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID       *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	TaskType      string     `gorm:"type:varchar(32);not null"`
	ScheduledTime time.Time  `gorm:"not null"`
	Status        string     `gorm:"type:varchar(16);not null;index"`
	Address       string     `gorm:"type:text"`
	ClientName    string     `gorm:"type:varchar(255)"`
	ClientPhone   string     `gorm:"type:varchar(64)"`
	InternalNotes string     `gorm:"type:text"`
	Seq           int64      `gorm:"not null;default:0;index"`
	CreatedAt     time.Time
	Photos        []PhotoDTO `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

func (TaskDTO) TableName() string {
	return "tasks"
}

// PhotoDTO is the row of the task_photos table.
type PhotoDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TaskID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageURL    string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text"`
	Seq         int64     `gorm:"not null;default:0;index"`
	CreatedAt   time.Time
}

func (PhotoDTO) TableName() string {
	return "task_photos"
}

// FromDomain converts a task into its row with photo rows. It is exported
// for the route repository, which stores tasks as part of a route.
//
// Every call draws new Seq values. Updates never write Seq back, so a
// row keeps the value it was inserted with.
func FromDomain(t *task.Task) TaskDTO {
	details := t.Details()
	dto := TaskDTO{
		ID:            t.ID().Bytes(),
		RouteID:       t.RouteID().Bytes(),
		OrderID:       kernel.OptionalBytes(t.OrderID()),
		TaskType:      t.Type().String(),
		ScheduledTime: t.ScheduledTime().UTC(),
		Status:        t.Status().String(),
		Address:       details.Address,
		ClientName:    details.ClientName,
		ClientPhone:   details.ClientPhone,
		InternalNotes: details.InternalNotes,
		Seq:           rowSequence.next(),
	}

	for _, p := range t.Photos() {
		dto.Photos = append(dto.Photos, PhotoDTO{
			ID:          p.ID().Bytes(),
			TaskID:      dto.ID,
			ImageURL:    p.ImageURL(),
			Description: p.Description(),
			Seq:         rowSequence.next(),
		})
	}

	return dto
}

// ToDomain rebuilds a task from its row. Photos keep the order of
// dto.Photos.
func ToDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.OptionalUUID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	status, err := task.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	photos := make([]*task.Photo, 0, len(dto.Photos))
	for _, p := range dto.Photos {
		photoID, photoErr := kernel.UUIDFromBytes(p.ID[:])
		if photoErr != nil {
			return nil, photoErr
		}

		photo, photoErr := task.NewPhoto(photoID, p.ImageURL, p.Description)
		if photoErr != nil {
			return nil, photoErr
		}
		photos = append(photos, photo)
	}

	return task.RestoreTask(
		id,
		routeID,
		orderID,
		task.Type(dto.TaskType),
		dto.ScheduledTime,
		status,
		task.Details{
			Address:       dto.Address,
			ClientName:    dto.ClientName,
			ClientPhone:   dto.ClientPhone,
			InternalNotes: dto.InternalNotes,
		},
		photos,
	)
}
