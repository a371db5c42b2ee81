package orderrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database. A taken order number is refused
// with ObjectAlreadyExistsError.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("order", aggregate.Number(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Cleared optional fields
// are written as NULL or zero.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "number", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an order by ID.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}

// NextNumber returns one more than the highest order number in use, 1 for
// an empty table. The unique index on number rejects a concurrent writer
// that raced for the same value.
func (r *GormOrderRepository) NextNumber(ctx context.Context) (int64, error) {
	var last int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("COALESCE(MAX(number), 0)").
		Scan(&last).Error
	if err != nil {
		return 0, err
	}

	return last + 1, nil
}

// GormRouteDefinitionRepository implements RouteDefinitionRepository using GORM.
type GormRouteDefinitionRepository struct {
	db *gorm.DB
}

func NewGormRouteDefinitionRepository(db *gorm.DB) *GormRouteDefinitionRepository {
	return &GormRouteDefinitionRepository{db: db}
}

func (r *GormRouteDefinitionRepository) Add(ctx context.Context, definition *order.RouteDefinition) error {
	if err := definition.Validate(); err != nil {
		return err
	}

	dto := definitionFromDomain(definition)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormRouteDefinitionRepository) Get(ctx context.Context, id kernel.UUID) (*order.RouteDefinition, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDefinitionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route definition", id.String())
		}
		return nil, err
	}

	return definitionToDomain(dto)
}
