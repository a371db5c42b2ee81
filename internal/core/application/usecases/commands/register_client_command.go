package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/client"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRegisterClientCommandIsNotConstructed = errors.New(
	"RegisterClientCommand must be created via NewRegisterClientCommand constructor",
)

// RegisterClientCommand adds an individual or a company to the client registry.
//
// Example:
//
//	cmd, err := NewRegisterClientCommand(kernel.NewUUID(), "COMPANY",
//	    client.Contact{Phone: "0257000000"},
//	    client.IndividualDetails{},
//	    client.CompanyDetails{LegalName: "Acme SRL", RegistrationID: "RO123"})
type RegisterClientCommand struct {
	clientID   kernel.UUID
	kind       client.Kind
	contact    client.Contact
	individual client.IndividualDetails
	company    client.CompanyDetails

	guard guard.ConstructorGuard
}

// NewRegisterClientCommand validates the identifier and the kind. The
// fields required by the variant are checked when the client is built.
func NewRegisterClientCommand(
	clientID kernel.UUID,
	kind string,
	contact client.Contact,
	individual client.IndividualDetails,
	company client.CompanyDetails,
) (RegisterClientCommand, error) {
	parsed, kindErr := client.ParseKind(kind)
	if err := errors.Join(clientID.Validate(), kindErr); err != nil {
		return RegisterClientCommand{}, err
	}

	return RegisterClientCommand{
		clientID:   clientID,
		kind:       parsed,
		contact:    contact,
		individual: individual,
		company:    company,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterClientCommand) Validate() error {
	return c.guard.Validate(ErrRegisterClientCommandIsNotConstructed)
}

func (c RegisterClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c RegisterClientCommand) Kind() client.Kind {
	return c.kind
}

func (c RegisterClientCommand) Contact() client.Contact {
	return c.contact
}

func (c RegisterClientCommand) Individual() client.IndividualDetails {
	return c.individual
}

func (c RegisterClientCommand) Company() client.CompanyDetails {
	return c.company
}
