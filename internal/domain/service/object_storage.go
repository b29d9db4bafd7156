package service

import "context"

// ObjectStorage defines the interface for storing creative assets.
// Implementations sit on top of blob stores (local disk in dev, a
// cloud bucket in prod) and return a publicly reachable URL.
type ObjectStorage interface {
	// Put writes the given bytes under key and returns the public URL
	// of the stored object.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Close releases any resources held by the store.
	Close() error
}
