package commands

import (
	"context"

	"go.uber.org/zap"

	"dispatch/internal/core/domain/model/client"
	"dispatch/internal/core/ports"
)

// UploadClientIDPhotoCommandHandler uploads the document scan under the
// client's deterministic name and records its URL on the client.
//
// Only individuals carry an identity document; for a company the handler
// fails with client.ErrNotAnIndividual before uploading anything.
type UploadClientIDPhotoCommandHandler struct {
	uowFactory ClientUoWFactory
	store      ports.PhotoStore
	logger     *zap.Logger
}

func NewUploadClientIDPhotoCommandHandler(
	uowFactory ClientUoWFactory,
	store ports.PhotoStore,
	logger *zap.Logger,
) UploadClientIDPhotoCommandHandler {
	return UploadClientIDPhotoCommandHandler{
		uowFactory: uowFactory,
		store:      store,
		logger:     logger.Named("upload_client_id_photo"),
	}
}

func (h UploadClientIDPhotoCommandHandler) Handle(ctx context.Context, cmd UploadClientIDPhotoCommand) (err error) {
	if err = cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	clientRepo := uow.ClientRepository()

	c, err := clientRepo.Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	name, err := c.IDPhotoName()
	if err != nil {
		return err
	}

	url, err := h.store.Put(ctx, ports.PhotoUpload{
		Data:         cmd.Data(),
		ContentType:  cmd.ContentType(),
		Folder:       client.IDPhotoFolder,
		OriginalName: cmd.FileName(),
		DesiredName:  name,
	})
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			removeStoredPhotos(ctx, h.store, h.logger, url)
		}
	}()

	if err = c.AttachIDPhoto(url); err != nil {
		return err
	}

	if err = clientRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
