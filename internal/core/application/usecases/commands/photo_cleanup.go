package commands

import (
	"context"

	"go.uber.org/zap"

	"dispatch/internal/core/ports"
)

// removeStoredPhotos deletes objects from the photo store after the rows
// referencing them are gone. Failures are logged and do not fail the
// command.
func removeStoredPhotos(ctx context.Context, store ports.PhotoStore, logger *zap.Logger, urls ...string) {
	for _, url := range urls {
		deleted, err := store.Delete(ctx, url)
		switch {
		case err != nil:
			logger.Warn("failed to delete photo object", zap.String("url", url), zap.Error(err))
		case !deleted:
			logger.Info("photo object was already gone", zap.String("url", url))
		}
	}
}
