// Package storage provides the blob-backed implementation of creative
// asset storage. The bucket URL decides the backend: file:// for local
// development, gs:// in production.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"vehiclee/config"
	"vehiclee/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Blob drivers registered by side effect.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobStorage implements service.ObjectStorage on top of a gocloud bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds dependencies for the object storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the configured bucket and wires its shutdown
// into the application lifecycle.
func NewBlobStorage(params Params) (service.ObjectStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Blob storage initialized",
		slog.String("bucket_url", cfg.BucketURL),
	)

	store := &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing blob storage")

			return store.Close()
		},
	})

	return store, nil
}

// NewBucketStorage wraps an already opened bucket. Used by tests with
// an in-memory bucket.
func NewBucketStorage(bucket *blob.Bucket, publicBaseURL string) service.ObjectStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Put writes the given bytes under key and returns the public URL of
// the stored object.
func (s *blobStorage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write object %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Close releases the underlying bucket.
func (s *blobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewBlobStorage),
)
