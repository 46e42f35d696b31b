// Package photos stores listing photos in an S3-compatible backend. The
// blob is treated as opaque: bytes in, bytes out, never inspected. When the
// db photo backend is configured, listings keep the blob inline in Postgres
// and this package is not involved.
package photos

import "context"

// Store is the object-storage collaborator for listing photos.
type Store interface {
	// Put uploads the blob under a fresh random key and returns the key.
	Put(ctx context.Context, data []byte) (string, error)

	// URL returns a short-lived presigned GET URL for the stored blob.
	URL(ctx context.Context, key string) (string, error)
}
