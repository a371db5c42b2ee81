package task

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// PhotoFolder is the photo store folder task pictures are uploaded to.
const PhotoFolder = "Task Photos"

var (
	ErrPhotoIsNotConstructed = errors.New("Photo must be created via NewPhoto constructor")
	ErrImageURLIsRequired    = errs.NewValueIsRequiredError("image url")
)

// Photo is a picture taken on site. It belongs to exactly one task and is
// deleted with it.
type Photo struct {
	id          kernel.UUID
	imageURL    string
	description string
	guard       guard.ConstructorGuard
}

// NewPhoto creates a photo entity for an already uploaded image.
func NewPhoto(id kernel.UUID, imageURL, description string) (*Photo, error) {
	p := &Photo{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	p.id = id

	if strings.TrimSpace(imageURL) == "" {
		return nil, ErrImageURLIsRequired
	}
	p.imageURL = imageURL

	return p, nil
}

func (p *Photo) Validate() error {
	if p == nil {
		return ErrPhotoIsNotConstructed
	}
	return p.guard.Validate(ErrPhotoIsNotConstructed)
}

func (p *Photo) ID() kernel.UUID {
	return p.id
}

func (p *Photo) ImageURL() string {
	return p.imageURL
}

func (p *Photo) Description() string {
	return p.description
}
