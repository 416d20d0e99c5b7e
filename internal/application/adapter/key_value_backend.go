// Package adapter defines the interfaces between the application layer and
// its infrastructure collaborators.
package adapter

import "context"

// KeyValueBackend is the durable storage the finance store writes through: a
// synchronous, per-key string store with no atomicity across keys. The store
// accepts eventual, not atomic, persistence consistency.
type KeyValueBackend interface {
	// Get returns the raw value for key, and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes the raw value under key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear wipes every key owned by this backend. Used only by the reset
	// protocol, which requires clear-before-write ordering.
	Clear(ctx context.Context) error

	// Ping reports backend reachability for health checks.
	Ping(ctx context.Context) error
}
