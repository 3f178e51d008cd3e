// Package kv is the durable persistence boundary: an opaque string store
// keyed by name. The ledger serializes its whole state into a single slot;
// nothing here knows what the values mean.
package kv

import "context"

// Store is a named-slot string store. Keys must be valid file name
// components. Implementations are safe for concurrent use.
type Store interface {
	// Get returns the value for key, with found=false when the slot has
	// never been written.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set writes the full value for key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
