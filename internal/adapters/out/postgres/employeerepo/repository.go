package employeerepo

import (
	"context"
	"errors"
	"strings"

	"dispatch/internal/adapters/out/postgres/routerepo"
	"dispatch/internal/core/domain/model/employee"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// ErrEmployeeHasRoutes is the cause reported when deleting an employee
// that still drives routes.
var ErrEmployeeHasRoutes = errors.New("employee is assigned to routes")

// GormEmployeeRepository implements ports.EmployeeRepository using GORM.
type GormEmployeeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormEmployeeRepository(db *gorm.DB, tracker aggregateTracker) *GormEmployeeRepository {
	return &GormEmployeeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new employee and links the roles it holds. The roles must
// already be stored.
func (r *GormEmployeeRepository) Add(ctx context.Context, aggregate *employee.Employee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Roles.*").Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("employee", aggregate.Email(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an employee with its roles.
func (r *GormEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EmployeeDTO
	if err := r.db.WithContext(ctx).Preload("Roles").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByEmail matches the address case-insensitively.
func (r *GormEmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&EmployeeDTO{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes an employee and its role links. An employee still
// assigned to a route is refused with ValueIsInvalidError.
func (r *GormEmployeeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	var routes int64
	if err := db.Model(&routerepo.RouteDTO{}).Where("employee_id = ?", id.Bytes()).Count(&routes).Error; err != nil {
		return err
	}
	if routes > 0 {
		return errs.NewValueIsInvalidErrorWithCause("employee", ErrEmployeeHasRoutes)
	}

	dto := EmployeeDTO{ID: id.Bytes()}
	if err := db.Model(&dto).Association("Roles").Clear(); err != nil {
		return err
	}

	result := db.Where("id = ?", dto.ID).Delete(&EmployeeDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("employee", id.String())
	}
	return nil
}

// GormRoleRepository implements ports.RoleRepository using GORM.
type GormRoleRepository struct {
	db *gorm.DB
}

func NewGormRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

func (r *GormRoleRepository) Add(ctx context.Context, role *employee.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	dto := roleFromDomain(role)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("role", role.Name(), err)
		}
		return err
	}
	return nil
}

// FindByName matches the role name case-insensitively.
func (r *GormRoleRepository) FindByName(ctx context.Context, name string) (*employee.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, employee.ErrRoleNameIsRequired
	}

	var dto RoleDTO
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("role", name)
		}
		return nil, err
	}

	return roleToDomain(dto)
}
