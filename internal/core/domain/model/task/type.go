package task

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Type is the kind of field work a task represents.
type Type string

const (
	Placement    Type = "PLACEMENT"
	Pickup       Type = "PICKUP"
	Sanitization Type = "SANITIZATION"
	Maintenance  Type = "MAINTENANCE"
)

// orderTypeTags maps the lower-cased order type tags, plural and singular,
// to the work they produce.
var orderTypeTags = map[string]Type{
	"amplasari":  Placement,
	"amplasare":  Placement,
	"ridicari":   Pickup,
	"ridicare":   Pickup,
	"igienizari": Sanitization,
	"igienizare": Sanitization,
}

// MapOrderType derives the task type from an order's free-text type tag.
// Matching ignores case and surrounding spaces. Any tag it does not
// recognise, including the empty one, yields Placement.
func MapOrderType(tag string) Type {
	if t, ok := orderTypeTags[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return t
	}
	return Placement
}

// ParseType accepts a task type name in any letter case.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Type) Validate() error {
	switch t {
	case Placement, Pickup, Sanitization, Maintenance:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("task type", fmt.Errorf("%q is not a valid task type", string(t)))
	}
}

func (t Type) String() string {
	return string(t)
}
