package nfa

import (
	"log/slog"
	"time"

	"github.com/aretw0/nfa/internal/platform"
	"github.com/aretw0/nfa/pkg/core"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// Note is a public alias for the stored note.
type Note = core.Note

// Manager is a public alias for the note manager.
type Manager = core.Manager

// DatabaseError is a public alias for store failures.
type DatabaseError = core.DatabaseError

// SerializationError is a public alias for encoding failures.
type SerializationError = core.SerializationError

// ErrNoteNotFound is returned by Get and Update for unknown IDs.
var ErrNoteNotFound = core.ErrNoteNotFound

// --- Configuration ---

// Option defines a functional option for configuring nfa.
type Option = platform.Option

// WithLogger sets the logger for the manager and store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithCodec replaces the on-disk note encoding.
func WithCodec(codec core.Codec) Option {
	return platform.WithCodec(codec)
}

// WithIDGenerator selects the identifier scheme for new notes.
func WithIDGenerator(gen core.IDGenerator) Option {
	return platform.WithIDGenerator(gen)
}

// WithSortableIDs switches new notes to time-ordered identifiers.
func WithSortableIDs() Option {
	return platform.WithIDGenerator(core.SortableID)
}

// WithClock overrides the time source.
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// WithCacheSize enables an LRU read cache holding size notes.
func WithCacheSize(size int) Option {
	return platform.WithCacheSize(size)
}

// WithOpenTimeout bounds the wait for a store locked by another process.
func WithOpenTimeout(d time.Duration) Option {
	return platform.WithOpenTimeout(d)
}

// WithMustExist fails instead of creating a missing store directory.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// --- Factory ---

// Open opens or creates the note store in the directory at path.
// Failures are reported as *DatabaseError.
func Open(path string, opts ...Option) (*Manager, error) {
	return platform.New(path, opts...)
}

// --- Helpers ---

// IsNotFound reports whether err means the note does not exist.
func IsNotFound(err error) bool {
	return core.IsNotFound(err)
}

// InferTitle derives a quick-note title from content.
func InferTitle(content string) string {
	return core.InferTitle(content)
}
