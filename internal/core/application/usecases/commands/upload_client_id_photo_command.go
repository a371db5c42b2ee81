package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUploadClientIDPhotoCommandIsNotConstructed = errors.New(
	"UploadClientIDPhotoCommand must be created via NewUploadClientIDPhotoCommand constructor",
)

// UploadClientIDPhotoCommand stores the scan of an individual client's
// identity document.
type UploadClientIDPhotoCommand struct {
	clientID    kernel.UUID
	data        []byte
	fileName    string
	contentType string

	guard guard.ConstructorGuard
}

func NewUploadClientIDPhotoCommand(
	clientID kernel.UUID,
	data []byte,
	fileName string,
	contentType string,
) (UploadClientIDPhotoCommand, error) {
	var dataErr error
	if len(data) == 0 {
		dataErr = ErrPhotoDataIsRequired
	}

	if err := errors.Join(clientID.Validate(), dataErr); err != nil {
		return UploadClientIDPhotoCommand{}, err
	}

	return UploadClientIDPhotoCommand{
		clientID:    clientID,
		data:        data,
		fileName:    strings.TrimSpace(fileName),
		contentType: contentType,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UploadClientIDPhotoCommand) Validate() error {
	return c.guard.Validate(ErrUploadClientIDPhotoCommandIsNotConstructed)
}

func (c UploadClientIDPhotoCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c UploadClientIDPhotoCommand) Data() []byte {
	return c.data
}

func (c UploadClientIDPhotoCommand) FileName() string {
	return c.fileName
}

func (c UploadClientIDPhotoCommand) ContentType() string {
	return c.contentType
}
