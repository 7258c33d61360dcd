/*
Package storage wraps S3-compatible object storage behind a small interface.
*/
package storage

import (
	"context"
	"errors"
)

// ErrObjectNotFound is returned by Get when the key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// ServiceConfig holds the settings required to reach the bucket.
type ServiceConfig struct {
	S3BucketName      string
	S3Endpoint        string
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string
}

// ObjectStore is the subset of object storage operations the server relies on.
type ObjectStore interface {
	// Get returns the object body, or ErrObjectNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put writes body under key, replacing any existing object.
	Put(ctx context.Context, key string, body []byte, contentType string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// NewObjectStore returns the S3-backed ObjectStore for cfg.
func NewObjectStore(ctx context.Context, cfg ServiceConfig) (ObjectStore, error) {
	return newS3Client(ctx, cfg)
}
