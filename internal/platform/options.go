package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/nfa/pkg/core"
)

// options holds the internal configuration for a note manager.
type options struct {
	store       core.Store
	codec       core.Codec
	idGenerator core.IDGenerator
	clock       func() time.Time
	logger      *slog.Logger
	cacheSize   int
	openTimeout time.Duration
	mustExist   bool
}

// Option defines a functional option for configuring the note manager.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		idGenerator: core.RandomID,
		clock:       time.Now,
	}
}

// WithLogger sets the logger for the manager and the store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore injects a custom store (e.g. mock, in-memory).
// If provided, the bbolt store is skipped and the path is ignored.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithCodec replaces the binary note encoding.
// Notes written with one codec are unreadable with another.
func WithCodec(codec core.Codec) Option {
	return func(o *options) {
		o.codec = codec
	}
}

// WithIDGenerator selects how new note IDs are produced.
func WithIDGenerator(gen core.IDGenerator) Option {
	return func(o *options) {
		o.idGenerator = gen
	}
}

// WithClock overrides time.Now (useful for testing).
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithCacheSize enables an LRU read cache of the given number of notes.
// Zero disables it.
func WithCacheSize(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// WithOpenTimeout bounds how long opening waits for another process to
// release the store. Zero means the store default.
// bbolt polls the lock every 50ms, so timeouts of 50ms or less fail at once.
func WithOpenTimeout(d time.Duration) Option {
	return func(o *options) {
		o.openTimeout = d
	}
}

// WithMustExist fails instead of creating a missing store directory.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}
