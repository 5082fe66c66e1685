// Package storage implements the ImageStore interface on a blob bucket.
package storage

import (
	"context"
	"os"

	"shipnotify/config"
	"shipnotify/internal/domain/service"
	"shipnotify/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

type blobImageStore struct {
	bucket *blob.Bucket
}

// New creates a file-backed blob bucket for shipment images. The bucket
// abstraction keeps a move to cloud storage a one-line URL change.
func New(params Params) (service.ImageStore, error) {
	dir := params.Config.Storage.ImagesDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create images directory")
	}

	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStore{bucket: bucket}, nil
}

// Save writes the image bytes under the given key and returns the stored path.
func (s *blobImageStore) Save(ctx context.Context, key string, data []byte) (string, error) {
	if err := s.bucket.WriteAll(ctx, key, data, nil); err != nil {
		return "", errors.Wrap(err, "failed to store image")
	}

	return key, nil
}

// Load reads back a stored image by its path.
func (s *blobImageStore) Load(ctx context.Context, path string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read image")
	}

	return data, nil
}

// Delete removes a stored image. Deleting a missing image is not an error.
func (s *blobImageStore) Delete(ctx context.Context, path string) error {
	if err := s.bucket.Delete(ctx, path); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}
