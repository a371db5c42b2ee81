package taskrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/task"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTaskRepository implements ports.TaskRepository using GORM.
type GormTaskRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker is implemented by the unit of work, which publishes the
// events of tracked tasks once the transaction commits.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTaskRepository(db *gorm.DB, tracker aggregateTracker) *GormTaskRepository {
	return &GormTaskRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new task with its photos. A second task for the same order
// is refused with ObjectAlreadyExistsError.
func (r *GormTaskRepository) Add(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapDuplicate(aggregate, err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the task row and replaces its photo set.
func (r *GormTaskRepository) Update(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&TaskDTO{}).
		Where("id = ?", dto.ID).
		Select("route_id", "order_id", "task_type", "scheduled_time", "status",
			"address", "client_name", "client_phone", "internal_notes").
		Updates(&dto)
	if result.Error != nil {
		return mapDuplicate(aggregate, result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("task", aggregate.ID().String())
	}

	if err := syncPhotos(db, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a task with its photos in insertion order.
func (r *GormTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	err := r.db.WithContext(ctx).
		Preload("Photos", orderedPhotos).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetByOrder retrieves the task created from an order.
func (r *GormTaskRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*task.Task, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	err := r.db.WithContext(ctx).
		Preload("Photos", orderedPhotos).
		First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task for order", orderID.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// ExistsForOrder reports whether any task references the order.
func (r *GormTaskRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&TaskDTO{}).
		Where("order_id = ?", orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes the task and its photos.
func (r *GormTaskRepository) Delete(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().Bytes()
	db := r.db.WithContext(ctx)

	if err := db.Where("task_id = ?", id).Delete(&PhotoDTO{}).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id).Delete(&TaskDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("task", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// DeleteForRoute removes every photo and task of a route. The route
// repository calls it before deleting the route row.
func DeleteForRoute(db *gorm.DB, routeID uuid.UUID) error {
	taskIDs := db.Model(&TaskDTO{}).Select("id").Where("route_id = ?", routeID)
	if err := db.Where("task_id IN (?)", taskIDs).Delete(&PhotoDTO{}).Error; err != nil {
		return err
	}

	return db.Where("route_id = ?", routeID).Delete(&TaskDTO{}).Error
}

// LoadForRoute reads the tasks of a route with their photos in insertion
// order.
func LoadForRoute(db *gorm.DB, routeID uuid.UUID) ([]TaskDTO, error) {
	var dtos []TaskDTO
	err := db.Preload("Photos", orderedPhotos).
		Where("route_id = ?", routeID).
		Order("seq, id").
		Find(&dtos).Error
	return dtos, err
}

func orderedPhotos(db *gorm.DB) *gorm.DB {
	return db.Order("seq, id")
}

// syncPhotos inserts photos the task gained and deletes the ones it lost.
// Existing photo rows are immutable.
func syncPhotos(db *gorm.DB, dto TaskDTO) error {
	keep := make([]uuid.UUID, 0, len(dto.Photos))
	for _, p := range dto.Photos {
		keep = append(keep, p.ID)
	}

	stale := db.Where("task_id = ?", dto.ID)
	if len(keep) > 0 {
		stale = stale.Where("id NOT IN ?", keep)
	}
	if err := stale.Delete(&PhotoDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Photos) == 0 {
		return nil
	}

	var existing []uuid.UUID
	if err := db.Model(&PhotoDTO{}).Where("task_id = ?", dto.ID).Pluck("id", &existing).Error; err != nil {
		return err
	}

	known := make(map[uuid.UUID]struct{}, len(existing))
	for _, id := range existing {
		known[id] = struct{}{}
	}

	for _, p := range dto.Photos {
		if _, ok := known[p.ID]; ok {
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			return err
		}
	}

	return nil
}

func mapDuplicate(aggregate *task.Task, err error) error {
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}

	if orderID := aggregate.OrderID(); orderID != nil {
		return errs.NewObjectAlreadyExistsErrorWithCause("task for order", orderID.String(), err)
	}
	return errs.NewObjectAlreadyExistsErrorWithCause("task", aggregate.ID().String(), err)
}
