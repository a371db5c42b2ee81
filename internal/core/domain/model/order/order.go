package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrClientIsRequired      = errs.NewValueIsRequiredError("client")
)

// Details are the service attributes of an order. Every field is optional.
type Details struct {
	Quantity            int
	Indefinite          bool
	DurationDays        int
	StartDate           *time.Time
	EndDate             *time.Time
	Location            string
	Contact             string
	SanitationFrequency int
	Notes               string
}

// Validate checks the numeric fields are not negative and the date range
// is not reversed.
func (d Details) Validate() error {
	var problems []error
	if d.Quantity < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", d.Quantity)))
	}
	if d.DurationDays < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("duration", fmt.Errorf("%d is negative", d.DurationDays)))
	}
	if d.SanitationFrequency < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("sanitation frequency",
			fmt.Errorf("%d is negative", d.SanitationFrequency)))
	}
	if d.StartDate != nil && d.EndDate != nil && d.EndDate.Before(*d.StartDate) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("end date", errors.New("end date is before start date")))
	}
	return errors.Join(problems...)
}

// Order is a client's purchase. The client reference is mandatory; the
// product and route definition references are optional.
//
// The order type is a free-text tag entered by sales ("amplasare",
// "ridicare", "igienizare", ...). It is stored as given and only
// interpreted when a task is created from the order.
type Order struct {
	id                kernel.UUID
	number            int64
	date              time.Time
	clientID          kernel.UUID
	productID         *kernel.UUID
	routeDefinitionID *kernel.UUID
	orderType         string
	details           Details
	guard             guard.ConstructorGuard
}

// NewOrder creates an order.
//
// Parameters:
//   - id: unique identifier
//   - number: human facing sequence number, positive
//   - date: when the order was placed
//   - clientID: the purchasing client
//   - productID, routeDefinitionID: optional references
//   - orderType: free-text type tag
//   - details: service attributes
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), 1001, now, clientID, &productID, nil,
//	    "amplasare", order.Details{Quantity: 2, Location: "46.18,21.31"})
func NewOrder(
	id kernel.UUID,
	number int64,
	date time.Time,
	clientID kernel.UUID,
	productID *kernel.UUID,
	routeDefinitionID *kernel.UUID,
	orderType string,
	details Details,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setDate(date),
		o.setClientID(clientID),
		o.setReferences(productID, routeDefinitionID),
		o.setContent(orderType, details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage.
func RestoreOrder(
	id kernel.UUID,
	number int64,
	date time.Time,
	clientID kernel.UUID,
	productID *kernel.UUID,
	routeDefinitionID *kernel.UUID,
	orderType string,
	details Details,
) (*Order, error) {
	return NewOrder(id, number, date, clientID, productID, routeDefinitionID, orderType, details)
}

// Validate ensures the Order was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() int64 {
	return o.number
}

func (o *Order) Date() time.Time {
	return o.date
}

func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

func (o *Order) ProductID() *kernel.UUID {
	return copyID(o.productID)
}

func (o *Order) RouteDefinitionID() *kernel.UUID {
	return copyID(o.routeDefinitionID)
}

func (o *Order) Type() string {
	return o.orderType
}

func (o *Order) Details() Details {
	return o.details
}

// Revise replaces the type tag, the service attributes and the optional
// references. The client and number of an order never change.
func (o *Order) Revise(orderType string, details Details, productID, routeDefinitionID *kernel.UUID) error {
	if err := errors.Join(details.Validate(), validateOptional(productID), validateOptional(routeDefinitionID)); err != nil {
		return err
	}

	o.productID = copyID(productID)
	o.routeDefinitionID = copyID(routeDefinitionID)
	o.orderType = strings.TrimSpace(orderType)
	o.details = details
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number int64) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%d is not greater than 0", number))
	}
	o.number = number
	return nil
}

func (o *Order) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	o.date = date
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if clientID.Validate() != nil {
		return ErrClientIsRequired
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setReferences(productID, routeDefinitionID *kernel.UUID) error {
	if err := errors.Join(validateOptional(productID), validateOptional(routeDefinitionID)); err != nil {
		return err
	}
	o.productID = copyID(productID)
	o.routeDefinitionID = copyID(routeDefinitionID)
	return nil
}

func (o *Order) setContent(orderType string, details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	o.orderType = strings.TrimSpace(orderType)
	o.details = details
	return nil
}

func validateOptional(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	return id.Validate()
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
