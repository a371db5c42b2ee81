package photostore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"go.uber.org/zap"
)

// LocalStore keeps photos in a directory served under baseURL. It stands in
// for GCS when no bucket is configured.
type LocalStore struct {
	root    string
	baseURL string
	namer   namer
	logger  *zap.Logger
}

var _ ports.PhotoStore = (*LocalStore)(nil)

func NewLocalStore(root, baseURL string, clock kernel.Clock, logger *zap.Logger) (*LocalStore, error) {
	if root == "" {
		return nil, errors.New("local photo store: directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("local photo store: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalStore{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		namer:   newNamer(clock),
		logger:  logger.Named("local_photos"),
	}, nil
}

func (s *LocalStore) Put(_ context.Context, upload ports.PhotoUpload) (string, error) {
	name := s.namer.objectName(upload)
	target, err := s.path(name)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("local photo store: %w", err)
	}
	if err := os.WriteFile(target, upload.Data, 0o644); err != nil {
		return "", fmt.Errorf("local photo store: %w", err)
	}

	s.logger.Debug("photo stored", zap.String("object", name))
	return s.baseURL + "/" + name, nil
}

func (s *LocalStore) Delete(_ context.Context, urlOrKey string) (bool, error) {
	name := strings.TrimPrefix(urlOrKey, s.baseURL+"/")
	target, err := s.path(name)
	if err != nil {
		return false, err
	}

	err = os.Remove(target)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("local photo store: %w", err)
	}
	return true, nil
}

// path refuses names escaping the root directory.
func (s *LocalStore) path(name string) (string, error) {
	if name == "" || !filepath.IsLocal(filepath.FromSlash(name)) {
		return "", fmt.Errorf("local photo store: invalid object name %q", name)
	}
	return filepath.Join(s.root, filepath.FromSlash(name)), nil
}
