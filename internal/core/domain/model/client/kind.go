package client

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Kind tags the variant of a Client.
type Kind string

const (
	KindIndividual Kind = "INDIVIDUAL"
	KindCompany    Kind = "COMPANY"
)

// ParseKind accepts the variant name in any letter case.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToUpper(strings.TrimSpace(s))); k {
	case KindIndividual, KindCompany:
		return k, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("client kind", fmt.Errorf("%q is not a known client kind", s))
	}
}

// Validate reports whether k is one of the known variants.
func (k Kind) Validate() error {
	if k != KindIndividual && k != KindCompany {
		return errs.NewValueIsInvalidErrorWithCause("client kind", fmt.Errorf("%q is not a known client kind", string(k)))
	}
	return nil
}

func (k Kind) String() string {
	return string(k)
}
