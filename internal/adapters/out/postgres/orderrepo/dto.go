// Package orderrepo provides data transfer objects and mapping functions for
// order and route definition persistence.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting orders. The
// client reference is mandatory, product and route definition are not.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number            int64      `gorm:"not null;uniqueIndex"`
	Date              time.Time  `gorm:"not null"`
	ClientID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID         *uuid.UUID `gorm:"type:uuid"`
	RouteDefinitionID *uuid.UUID `gorm:"type:uuid;index"`
	OrderType         string     `gorm:"type:varchar(64)"`
	Details           DetailsDTO `gorm:"embedded"`
	CreatedAt         time.Time
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// DetailsDTO holds the service attributes embedded into the orders table.
type DetailsDTO struct {
	Quantity            int
	Indefinite          bool
	DurationDays        int
	StartDate           *datatypes.Date `gorm:"type:date"`
	EndDate             *datatypes.Date `gorm:"type:date"`
	Location            string          `gorm:"type:text"`
	Contact             string          `gorm:"type:text"`
	SanitationFrequency int
	Notes               string `gorm:"type:text"`
}

// RouteDefinitionDTO is the row of the route_definitions table.
type RouteDefinitionDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
	City string    `gorm:"type:varchar(255)"`
}

func (RouteDefinitionDTO) TableName() string {
	return "route_definitions"
}

func fromDomain(o *order.Order) OrderDTO {
	d := o.Details()
	return OrderDTO{
		ID:                o.ID().Bytes(),
		Number:            o.Number(),
		Date:              o.Date().UTC(),
		ClientID:          o.ClientID().Bytes(),
		ProductID:         kernel.OptionalBytes(o.ProductID()),
		RouteDefinitionID: kernel.OptionalBytes(o.RouteDefinitionID()),
		OrderType:         o.Type(),
		Details: DetailsDTO{
			Quantity:            d.Quantity,
			Indefinite:          d.Indefinite,
			DurationDays:        d.DurationDays,
			StartDate:           toDate(d.StartDate),
			EndDate:             toDate(d.EndDate),
			Location:            d.Location,
			Contact:             d.Contact,
			SanitationFrequency: d.SanitationFrequency,
			Notes:               d.Notes,
		},
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.OptionalUUID(dto.ProductID)
	if err != nil {
		return nil, err
	}

	routeDefinitionID, err := kernel.OptionalUUID(dto.RouteDefinitionID)
	if err != nil {
		return nil, err
	}

	d := dto.Details
	return order.RestoreOrder(id, dto.Number, dto.Date, clientID, productID, routeDefinitionID, dto.OrderType,
		order.Details{
			Quantity:            d.Quantity,
			Indefinite:          d.Indefinite,
			DurationDays:        d.DurationDays,
			StartDate:           fromDate(d.StartDate),
			EndDate:             fromDate(d.EndDate),
			Location:            d.Location,
			Contact:             d.Contact,
			SanitationFrequency: d.SanitationFrequency,
			Notes:               d.Notes,
		})
}

func definitionFromDomain(d *order.RouteDefinition) RouteDefinitionDTO {
	return RouteDefinitionDTO{
		ID:   d.ID().Bytes(),
		Name: d.Name(),
		City: d.City(),
	}
}

func definitionToDomain(dto RouteDefinitionDTO) (*order.RouteDefinition, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.NewRouteDefinition(id, dto.Name, dto.City)
}

func toDate(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := datatypes.Date(*t)
	return &d
}

func fromDate(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}
