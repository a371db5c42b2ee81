package commands

import (
	"context"

	"dispatch/internal/core/domain/model/client"
)

// RegisterClientCommandHandler builds the client variant named by the
// command and stores it.
type RegisterClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

func NewRegisterClientCommandHandler(uowFactory ClientUoWFactory) RegisterClientCommandHandler {
	return RegisterClientCommandHandler{uowFactory: uowFactory}
}

// Handle returns a ValueIsRequiredError when the variant's name field is
// empty.
func (h RegisterClientCommandHandler) Handle(ctx context.Context, cmd RegisterClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var (
		c   *client.Client
		err error
	)
	switch cmd.Kind() {
	case client.KindCompany:
		c, err = client.NewCompany(cmd.ClientID(), cmd.Contact(), cmd.Company())
	default:
		c, err = client.NewIndividual(cmd.ClientID(), cmd.Contact(), cmd.Individual())
	}
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ClientRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
