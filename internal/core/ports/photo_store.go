package ports

import "context"

// PhotoUpload describes an image to store.
type PhotoUpload struct {
	Data         []byte
	ContentType  string
	Folder       string
	OriginalName string
	// DesiredName, when set, replaces the generated object name. The
	// extension of OriginalName is kept.
	DesiredName string
}

// PhotoStore is the object storage holding task and client photos. The
// core treats the returned URL as an opaque string.
type PhotoStore interface {
	// Put stores the image and returns its public URL.
	Put(ctx context.Context, upload PhotoUpload) (string, error)

	// Delete removes the object addressed by a public URL or an object key.
	// It returns false when nothing was stored there.
	Delete(ctx context.Context, urlOrKey string) (bool, error)
}
