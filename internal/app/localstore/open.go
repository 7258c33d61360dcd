package localstore

import (
	"context"
	"fmt"

	"ufresher/internal/app/db"
	"ufresher/internal/app/storage"
	"ufresher/internal/configs"
)

// Open builds the backend selected by cfg.StorageBackend.
// The returned close function releases backend resources and is never nil.
func Open(ctx context.Context, cfg *configs.AppConfig) (Storage, func(), error) {
	noop := func() {}

	switch cfg.StorageBackend {
	case configs.BackendMemory:
		return NewMemory(), noop, nil

	case configs.BackendFile:
		f, err := NewFile(cfg.StorageDir)
		if err != nil {
			return nil, noop, err
		}
		return f, noop, nil

	case configs.BackendPostgres:
		pool, err := db.NewPool(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, noop, err
		}
		return NewPostgres(pool), pool.Close, nil

	case configs.BackendS3:
		objects, err := storage.NewObjectStore(ctx, storage.ServiceConfig{
			S3BucketName:      cfg.S3BucketName,
			S3Endpoint:        cfg.S3Endpoint,
			S3Region:          cfg.S3Region,
			S3AccessKeyID:     cfg.S3AccessKeyID,
			S3SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			return nil, noop, err
		}
		return NewObjects(objects, cfg.S3Prefix), noop, nil
	}

	return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
