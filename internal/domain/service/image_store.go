package service

import "context"

// ImageStore persists shipment images and hands back stable paths that
// notifications can reference.
type ImageStore interface {
	// Save writes the image bytes under the given key and returns the
	// stored path.
	Save(ctx context.Context, key string, data []byte) (string, error)

	// Load reads back a stored image by its path.
	Load(ctx context.Context, path string) ([]byte, error)

	// Delete removes a stored image. Deleting a missing image is not an
	// error.
	Delete(ctx context.Context, path string) error
}
