package photostore

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const publicHost = "https://storage.googleapis.com"

// GCSConfig selects the bucket. An empty CredentialsFile falls back to the
// application default credentials.
type GCSConfig struct {
	ProjectID       string
	Bucket          string
	CredentialsFile string
}

type GCSStore struct {
	client *storage.Client
	bucket string
	namer  namer
	logger *zap.Logger
}

var _ ports.PhotoStore = (*GCSStore)(nil)

// NewGCSStore builds the storage client once; it is shared by all requests.
func NewGCSStore(ctx context.Context, cfg GCSConfig, clock kernel.Clock, logger *zap.Logger) (*GCSStore, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("gcs: bucket is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	if cfg.ProjectID != "" {
		opts = append(opts, option.WithQuotaProject(cfg.ProjectID))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs: create client: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	return &GCSStore{
		client: client,
		bucket: cfg.Bucket,
		namer:  newNamer(clock),
		logger: logger.Named("gcs"),
	}, nil
}

func (s *GCSStore) Put(ctx context.Context, upload ports.PhotoUpload) (string, error) {
	name := s.namer.objectName(upload)

	w := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	w.ContentType = upload.ContentType
	if _, err := w.Write(upload.Data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs: write %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs: close %s: %w", name, err)
	}

	s.logger.Debug("photo stored", zap.String("object", name), zap.Int("bytes", len(upload.Data)))
	return PublicURL(s.bucket, name), nil
}

func (s *GCSStore) Delete(ctx context.Context, urlOrKey string) (bool, error) {
	name := ObjectKey(s.bucket, urlOrKey)
	if name == "" {
		return false, nil
	}

	err := s.client.Bucket(s.bucket).Object(name).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("gcs: delete %s: %w", name, err)
	}
	return true, nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}

// PublicURL is the public link of an object in bucket.
func PublicURL(bucket, object string) string {
	return fmt.Sprintf("%s/%s/%s", publicHost, bucket, object)
}

// ObjectKey strips the public URL prefix of bucket. Anything else is taken
// as an object key already.
func ObjectKey(bucket, urlOrKey string) string {
	prefix := fmt.Sprintf("%s/%s/", publicHost, bucket)
	if !strings.HasPrefix(urlOrKey, prefix) {
		return urlOrKey
	}
	key := strings.TrimPrefix(urlOrKey, prefix)
	if unescaped, err := url.PathUnescape(key); err == nil {
		return unescaped
	}
	return key
}
