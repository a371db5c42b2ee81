package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/core/domain/model/client"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const clientColumns = `
	id, kind, email, phone, address,
	full_name, national_id, id_photo_url,
	legal_name, registration_id, admin_contact`

type GetClientQueryHandler struct {
	db *gorm.DB
}

func NewGetClientQueryHandler(db *gorm.DB) GetClientQueryHandler {
	return GetClientQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError for an unknown client.
func (h GetClientQueryHandler) Handle(ctx context.Context, query GetClientQuery) (ClientResponse, error) {
	if err := query.Validate(); err != nil {
		return ClientResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`SELECT `+clientColumns+` FROM clients WHERE id = ?`, query.ClientID().Bytes()).Row()
	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ClientResponse{}, errs.NewObjectNotFoundError("client", query.ClientID().String())
		}
		return ClientResponse{}, err
	}

	return c, nil
}

func scanClient(row rowScanner) (ClientResponse, error) {
	var c ClientResponse
	var id uuid.UUID

	err := row.Scan(
		&id, &c.Kind, &c.Email, &c.Phone, &c.Address,
		&c.FullName, &c.NationalID, &c.IDPhotoURL,
		&c.LegalName, &c.RegistrationID, &c.AdminContact,
	)
	if err != nil {
		return ClientResponse{}, err
	}

	if c.ID, err = toUUID(id); err != nil {
		return ClientResponse{}, err
	}

	c.DisplayName = c.FullName
	if c.Kind == client.KindCompany.String() {
		c.DisplayName = c.LegalName
	}

	return c, nil
}
