package client

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// IDPhotoFolder is the photo store folder holding identity document scans.
const IDPhotoFolder = "Individual Client Ids"

var (
	ErrClientIsNotConstructed = errors.New("Client must be created via NewIndividual, NewCompany or RestoreClient")
	ErrFullNameIsRequired     = errs.NewValueIsRequiredError("full name")
	ErrLegalNameIsRequired    = errs.NewValueIsRequiredError("legal name")
	// ErrNotAnIndividual is returned by operations that only make sense for a person.
	ErrNotAnIndividual = errs.NewValueIsInvalidErrorWithCause("client kind", errors.New("operation requires an individual client"))
)

// Contact holds the fields every client variant carries.
type Contact struct {
	Email   string
	Phone   string
	Address string
}

// IndividualDetails are the fields of the Individual variant.
type IndividualDetails struct {
	FullName   string
	NationalID string
	IDPhotoURL string
}

// CompanyDetails are the fields of the Company variant.
type CompanyDetails struct {
	LegalName      string
	RegistrationID string
	AdminContact   string
}

// Client is a customer that places orders. Orders and tasks reference a
// client by ID; they never own it.
//
// Invariants:
//   - Kind is Individual or Company
//   - an Individual has a full name, a Company has a legal name
//   - only the details of the tagged variant are populated
type Client struct {
	id         kernel.UUID
	kind       Kind
	contact    Contact
	individual IndividualDetails
	company    CompanyDetails
	guard      guard.ConstructorGuard
}

// NewIndividual registers a person as a client.
//
// Example:
//
//	c, err := client.NewIndividual(kernel.NewUUID(),
//	    client.Contact{Phone: "0721000001", Address: "Str. Mihai Eminescu 3, Arad"},
//	    client.IndividualDetails{FullName: "Ion Popescu", NationalID: "1800101020011"})
func NewIndividual(id kernel.UUID, contact Contact, details IndividualDetails) (*Client, error) {
	return RestoreClient(id, KindIndividual, contact, details, CompanyDetails{})
}

// NewCompany registers a legal entity as a client.
func NewCompany(id kernel.UUID, contact Contact, details CompanyDetails) (*Client, error) {
	return RestoreClient(id, KindCompany, contact, IndividualDetails{}, details)
}

// RestoreClient rebuilds a client from storage. The details of the variant
// not selected by kind are discarded.
func RestoreClient(
	id kernel.UUID,
	kind Kind,
	contact Contact,
	individual IndividualDetails,
	company CompanyDetails,
) (*Client, error) {
	c := &Client{
		contact: normalizeContact(contact),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setVariant(kind, individual, company),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the client was built by one of the constructors.
func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

func (c *Client) ID() kernel.UUID {
	return c.id
}

func (c *Client) Kind() Kind {
	return c.kind
}

func (c *Client) Contact() Contact {
	return c.contact
}

func (c *Client) Email() string {
	return c.contact.Email
}

func (c *Client) Phone() string {
	return c.contact.Phone
}

func (c *Client) Address() string {
	return c.contact.Address
}

// Individual returns the person details and true for an Individual client.
func (c *Client) Individual() (IndividualDetails, bool) {
	if c.kind != KindIndividual {
		return IndividualDetails{}, false
	}
	return c.individual, true
}

// Company returns the company details and true for a Company client.
func (c *Client) Company() (CompanyDetails, bool) {
	if c.kind != KindCompany {
		return CompanyDetails{}, false
	}
	return c.company, true
}

// DisplayName is the name printed on tasks: the full name of a person or
// the legal name of a company.
func (c *Client) DisplayName() (string, error) {
	switch c.kind {
	case KindIndividual:
		return c.individual.FullName, nil
	case KindCompany:
		return c.company.LegalName, nil
	default:
		return "", c.kind.Validate()
	}
}

// BillingIdentifier is the national ID of a person or the registration ID
// (CUI) of a company.
func (c *Client) BillingIdentifier() (string, error) {
	switch c.kind {
	case KindIndividual:
		return c.individual.NationalID, nil
	case KindCompany:
		return c.company.RegistrationID, nil
	default:
		return "", c.kind.Validate()
	}
}

// IDPhotoName is the object name an identity document scan is stored
// under: "<clientID>_<FullNameWithoutSpaces>".
func (c *Client) IDPhotoName() (string, error) {
	if c.kind != KindIndividual {
		return "", ErrNotAnIndividual
	}
	return fmt.Sprintf("%s_%s", c.id.String(), strings.Join(strings.Fields(c.individual.FullName), "")), nil
}

// AttachIDPhoto records where the identity document scan of a person is stored.
func (c *Client) AttachIDPhoto(url string) error {
	if c.kind != KindIndividual {
		return ErrNotAnIndividual
	}
	if strings.TrimSpace(url) == "" {
		return errs.NewValueIsRequiredError("id photo url")
	}
	c.individual.IDPhotoURL = url
	return nil
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setVariant(kind Kind, individual IndividualDetails, company CompanyDetails) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	switch kind {
	case KindIndividual:
		individual.FullName = strings.TrimSpace(individual.FullName)
		if individual.FullName == "" {
			return ErrFullNameIsRequired
		}
		c.individual = individual
	case KindCompany:
		company.LegalName = strings.TrimSpace(company.LegalName)
		if company.LegalName == "" {
			return ErrLegalNameIsRequired
		}
		c.company = company
	}

	c.kind = kind
	return nil
}

func normalizeContact(contact Contact) Contact {
	return Contact{
		Email:   strings.TrimSpace(contact.Email),
		Phone:   strings.TrimSpace(contact.Phone),
		Address: strings.TrimSpace(contact.Address),
	}
}
