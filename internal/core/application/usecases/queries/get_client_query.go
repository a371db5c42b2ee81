package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetClientQueryIsNotConstructed = errors.New("GetClientQuery must be created via NewGetClientQuery constructor")

// GetClientQuery reads one client.
type GetClientQuery struct {
	clientID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewGetClientQuery(clientID kernel.UUID) (GetClientQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetClientQuery{}, err
	}
	return GetClientQuery{clientID: clientID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetClientQuery) ClientID() kernel.UUID {
	return q.clientID
}

func (q GetClientQuery) Validate() error {
	return q.guard.Validate(ErrGetClientQueryIsNotConstructed)
}

// ClientResponse is the read model of a client. Only the fields of its
// kind are filled; DisplayName is the legal name of a company or the full
// name of a person.
type ClientResponse struct {
	ID             kernel.UUID
	Kind           string
	DisplayName    string
	Email          string
	Phone          string
	Address        string
	FullName       string
	NationalID     string
	IDPhotoURL     string
	LegalName      string
	RegistrationID string
	AdminContact   string
}
