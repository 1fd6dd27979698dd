// Package kv defines the key/value handle the session store writes through.
package kv

import "context"

// Store abstracts the single storage slot backing the session layer.
// Implementations offer no transactional primitive: concurrent writers from
// separate processes race with last-writer-wins semantics, which the session
// layer accepts and documents rather than locks around.
type Store interface {
	// Set writes value under key, overwriting any existing value.
	Set(ctx context.Context, key string, value []byte) error

	// Get reads the value at key. The boolean reports presence; a missing
	// key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
