package http

import (
	"errors"
	"io"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/client"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// maxPhotoSize bounds multipart photo uploads.
const maxPhotoSize = 10 << 20

// ListClients handles GET /api/v1/clients.
func (s *Server) ListClients(ctx echo.Context) error {
	clients, err := s.h.ListClients.Handle(ctx.Request().Context(), queries.NewListClientsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Client, len(clients))
	for i, c := range clients {
		response[i] = toClient(c)
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterClient handles POST /api/v1/clients.
func (s *Server) RegisterClient(ctx echo.Context) error {
	var body NewClient
	if err := decode(ctx, &body); err != nil {
		return err
	}

	clientID := kernel.NewUUID()
	cmd, err := commands.NewRegisterClientCommand(clientID, body.Kind,
		client.Contact{Email: body.Email, Phone: body.Phone, Address: body.Address},
		client.IndividualDetails{FullName: body.FullName, NationalID: body.NationalId},
		client.CompanyDetails{LegalName: body.LegalName, RegistrationID: body.RegistrationId, AdminContact: body.AdminContact},
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.RegisterClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return created(ctx, http.StatusCreated, fromKernel(clientID))
}

// GetClient handles GET /api/v1/clients/{clientId}.
func (s *Server) GetClient(ctx echo.Context) error {
	clientID, err := pathUUID(ctx, "clientId")
	if err != nil {
		return badRequest(err.Error())
	}

	query, err := queries.NewGetClientQuery(clientID)
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.h.GetClient.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toClient(c))
}

// UploadClientIdPhoto handles POST /api/v1/clients/{clientId}/id-photo.
func (s *Server) UploadClientIdPhoto(ctx echo.Context) error {
	clientID, err := pathUUID(ctx, "clientId")
	if err != nil {
		return badRequest(err.Error())
	}

	file, err := readUpload(ctx)
	if err != nil {
		return badRequest(err.Error())
	}

	cmd, err := commands.NewUploadClientIDPhotoCommand(clientID, file.data, file.name, file.contentType)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.UploadClientIDPhoto.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func toClient(c queries.ClientResponse) Client {
	return Client{
		Id:             fromKernel(c.ID),
		Kind:           c.Kind,
		DisplayName:    c.DisplayName,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		FullName:       c.FullName,
		NationalId:     c.NationalID,
		IdPhotoUrl:     c.IDPhotoURL,
		LegalName:      c.LegalName,
		RegistrationId: c.RegistrationID,
		AdminContact:   c.AdminContact,
	}
}

type upload struct {
	data        []byte
	name        string
	contentType string
}

// readUpload reads the "file" part of a multipart request.
func readUpload(ctx echo.Context) (upload, error) {
	header, err := ctx.FormFile("file")
	if err != nil {
		return upload{}, err
	}

	f, err := header.Open()
	if err != nil {
		return upload{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxPhotoSize+1))
	if err != nil {
		return upload{}, err
	}
	if len(data) > maxPhotoSize {
		return upload{}, errors.New("photo is larger than 10 MiB")
	}

	return upload{
		data:        data,
		name:        header.Filename,
		contentType: header.Header.Get(echo.HeaderContentType),
	}, nil
}
