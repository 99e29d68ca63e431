package core

import "context"

// Store is the port to the embedded key-value backend.
// Keys are note IDs, values are encoded notes. Implementations must be safe
// for concurrent use and make each call atomic for its key.
type Store interface {
	// Get returns a copy of the value stored under key, or ErrNoteNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	// The write is durable when Put returns.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Removing an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Scan calls fn for every stored pair in key order.
	// Returning an error from fn stops the scan and is returned as is.
	Scan(ctx context.Context, fn func(key string, value []byte) error) error

	// Close releases the store handle.
	Close() error
}

// Codec converts notes to and from their stored byte form.
type Codec interface {
	Encode(n Note) ([]byte, error)
	Decode(data []byte) (Note, error)
}
