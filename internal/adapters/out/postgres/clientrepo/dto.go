// Package clientrepo persists the client registry. Both client variants
// share one table; the columns of the variant not selected by kind stay
// empty.
package clientrepo

import (
	"time"

	"dispatch/internal/core/domain/model/client"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClientDTO is the row of the clients table.
type ClientDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind           string    `gorm:"type:varchar(16);not null;index"`
	Email          string    `gorm:"type:varchar(255)"`
	Phone          string    `gorm:"type:varchar(64)"`
	Address        string    `gorm:"type:text"`
	FullName       string    `gorm:"type:varchar(255)"`
	NationalID     string    `gorm:"type:varchar(32)"`
	IDPhotoURL     string    `gorm:"type:text"`
	LegalName      string    `gorm:"type:varchar(255)"`
	RegistrationID string    `gorm:"type:varchar(32)"`
	AdminContact   string    `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
}

func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(c *client.Client) ClientDTO {
	contact := c.Contact()
	dto := ClientDTO{
		ID:      c.ID().Bytes(),
		Kind:    c.Kind().String(),
		Email:   contact.Email,
		Phone:   contact.Phone,
		Address: contact.Address,
	}

	if person, ok := c.Individual(); ok {
		dto.FullName = person.FullName
		dto.NationalID = person.NationalID
		dto.IDPhotoURL = person.IDPhotoURL
	}
	if company, ok := c.Company(); ok {
		dto.LegalName = company.LegalName
		dto.RegistrationID = company.RegistrationID
		dto.AdminContact = company.AdminContact
	}

	return dto
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(
		id,
		client.Kind(dto.Kind),
		client.Contact{Email: dto.Email, Phone: dto.Phone, Address: dto.Address},
		client.IndividualDetails{FullName: dto.FullName, NationalID: dto.NationalID, IDPhotoURL: dto.IDPhotoURL},
		client.CompanyDetails{LegalName: dto.LegalName, RegistrationID: dto.RegistrationID, AdminContact: dto.AdminContact},
	)
}
