// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// BlobStore is the durable key-value byte store backing all persistence.
// One logical key holds one serialized collection; the core never addresses
// anything finer-grained than a whole blob.
type BlobStore interface {
	// Save durably writes value under key, replacing any previous value.
	Save(ctx context.Context, key string, value []byte) error

	// Load reads the value stored under key. The second return is false when
	// the key has never been written.
	Load(ctx context.Context, key string) ([]byte, bool, error)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
