package cmd

import (
	"context"
	"fmt"

	"dispatch/internal/adapters/out/events"
	"dispatch/internal/adapters/out/photostore"
	rediscache "dispatch/internal/adapters/out/redis"
	"dispatch/internal/core/domain/model/kernel"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenDatabase connects to postgres. Unique violations are translated to
// gorm.ErrDuplicatedKey, which the repositories rely on.
func OpenDatabase(cfg Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
}

// BuildAdapters creates the photo store, event publisher and catalog cache
// selected by cfg. The returned func releases them; it is nil on error.
//
// Without GCS_BUCKET photos go to LOCAL_PHOTO_DIR, without KAFKA_BROKERS
// events are dropped and without REDIS_URL the catalog is not cached.
func BuildAdapters(ctx context.Context, cfg Config, logger *zap.Logger) (Adapters, func(), error) {
	clock := kernel.SystemClock{}
	var closers []func() error
	release := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Warn("failed to release adapter", zap.Error(err))
			}
		}
	}

	adapters := Adapters{Clock: clock}

	if cfg.GCSBucket != "" {
		store, err := photostore.NewGCSStore(ctx, photostore.GCSConfig{
			ProjectID:       cfg.GCSProjectID,
			Bucket:          cfg.GCSBucket,
			CredentialsFile: cfg.GCSCredentialsFile,
		}, clock, logger)
		if err != nil {
			return Adapters{}, nil, err
		}
		closers = append(closers, store.Close)
		adapters.Photos = store
	} else {
		store, err := photostore.NewLocalStore(cfg.LocalPhotoDir, cfg.LocalPhotoBaseURL, clock, logger)
		if err != nil {
			return Adapters{}, nil, err
		}
		logger.Warn("GCS_BUCKET is not set, storing photos on disk", zap.String("dir", cfg.LocalPhotoDir))
		adapters.Photos = store
	}

	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := events.NewTaskEventPublisher(cfg.KafkaBrokers, cfg.KafkaTaskTopic, logger)
		if err != nil {
			release()
			return Adapters{}, nil, err
		}
		closers = append(closers, func() error {
			publisher.Close()
			return nil
		})
		adapters.Publisher = publisher
	} else {
		adapters.Publisher = events.NewNoopPublisher(logger)
	}

	if cfg.RedisURL != "" {
		rdb, err := rediscache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			release()
			return Adapters{}, nil, fmt.Errorf("catalog cache: %w", err)
		}
		closers = append(closers, rdb.Close)
		adapters.Cache = rediscache.NewCache(rdb, "dispatch:")
	} else {
		adapters.Cache = rediscache.NopCache{}
	}

	return adapters, release, nil
}
