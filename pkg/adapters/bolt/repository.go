package bolt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.etcd.io/bbolt"

	"github.com/aretw0/nfa/pkg/core"
)

const (
	// DefaultFileName is the database file created inside the store directory.
	DefaultFileName = "notes.db"
	// DefaultTimeout bounds how long Initialize waits for the file lock.
	DefaultTimeout = time.Second
)

var bucketName = []byte("notes")

// ErrClosed is returned by operations on a repository that is not open.
var ErrClosed = errors.New("store is not open")

// Repository implements core.Store on a bbolt database file.
// Every call runs in its own bbolt transaction, which makes single-key
// operations atomic and Scan a consistent snapshot.
type Repository struct {
	Path   string
	config Config

	mu sync.RWMutex
	db *bbolt.DB
}

// Config holds the configuration for the bbolt repository.
type Config struct {
	Path      string        // Directory holding the database file
	FileName  string        // Defaults to DefaultFileName
	Timeout   time.Duration // Lock wait on open; defaults to DefaultTimeout
	FileMode  os.FileMode   // Defaults to 0600
	MustExist bool          // Fail instead of creating a missing directory
	Logger    *slog.Logger
}

var _ core.Store = (*Repository)(nil)

// NewRepository creates a repository. Call Initialize before use.
func NewRepository(config Config) *Repository {
	if config.FileName == "" {
		config.FileName = DefaultFileName
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.FileMode == 0 {
		config.FileMode = 0600
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Repository{
		Path:   config.Path,
		config: config,
	}
}

// Open creates and initializes a repository in one step.
func Open(ctx context.Context, config Config) (*Repository, error) {
	r := NewRepository(config)
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// Initialize creates the directory if needed, opens the database file and
// ensures the notes bucket exists. A lock held by another process fails
// after the configured timeout.
func (r *Repository) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return openError(err)
	}

	if r.config.MustExist {
		info, err := os.Stat(r.Path)
		if os.IsNotExist(err) {
			return openError(fmt.Errorf("store path does not exist: %s", r.Path))
		}
		if err != nil {
			return openError(err)
		}
		if !info.IsDir() {
			return openError(fmt.Errorf("store path is not a directory: %s", r.Path))
		}
	} else if err := os.MkdirAll(r.Path, 0755); err != nil {
		return openError(fmt.Errorf("failed to create store directory: %w", err))
	}

	file := r.File()
	r.config.Logger.Debug("opening store", "path", file)

	db, err := bbolt.Open(file, r.config.FileMode, &bbolt.Options{Timeout: r.config.Timeout})
	if err != nil {
		if errors.Is(err, bbolt.ErrTimeout) {
			err = fmt.Errorf("store is locked by another process: %w", err)
		}
		return openError(err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return openError(fmt.Errorf("failed to create bucket: %w", err))
	}

	r.mu.Lock()
	r.db = db
	r.mu.Unlock()
	return nil
}

// File returns the full path of the database file.
func (r *Repository) File() string {
	return filepath.Join(r.Path, r.config.FileName)
}

// Get implements core.Store.
func (r *Repository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := r.view(ctx, "get", func(b *bbolt.Bucket) error {
		v := b.Get([]byte(key))
		if v == nil {
			return core.ErrNoteNotFound
		}
		// Values are only valid inside the transaction.
		value = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put implements core.Store. The write is fsynced before it returns.
func (r *Repository) Put(ctx context.Context, key string, value []byte) error {
	return r.update(ctx, "put", func(b *bbolt.Bucket) error {
		return b.Put([]byte(key), value)
	})
}

// Delete implements core.Store. bbolt ignores missing keys.
func (r *Repository) Delete(ctx context.Context, key string) error {
	return r.update(ctx, "delete", func(b *bbolt.Bucket) error {
		return b.Delete([]byte(key))
	})
}

// Scan implements core.Store. fn runs inside a read transaction and must
// not write to the same repository.
func (r *Repository) Scan(ctx context.Context, fn func(key string, value []byte) error) error {
	var fnErr error

	err := r.view(ctx, "scan", func(b *bbolt.Bucket) error {
		return b.ForEach(func(k, v []byte) error {
			if err := fn(string(k), append([]byte(nil), v...)); err != nil {
				fnErr = err
				return err
			}
			return nil
		})
	})
	if fnErr != nil {
		return fnErr
	}
	return err
}

// Count returns the number of stored notes.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.view(ctx, "count", func(b *bbolt.Bucket) error {
		n = b.Stats().KeyN
		return nil
	})
	return n, err
}

// Close implements core.Store. Closing twice is a no-op.
func (r *Repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	if err != nil {
		return &core.DatabaseError{Op: "close", Err: err}
	}
	return nil
}

func (r *Repository) view(ctx context.Context, op string, fn func(*bbolt.Bucket) error) error {
	return r.tx(ctx, op, false, fn)
}

func (r *Repository) update(ctx context.Context, op string, fn func(*bbolt.Bucket) error) error {
	return r.tx(ctx, op, true, fn)
}

func (r *Repository) tx(ctx context.Context, op string, writable bool, fn func(*bbolt.Bucket) error) error {
	if err := ctx.Err(); err != nil {
		return &core.DatabaseError{Op: op, Err: err}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.db == nil {
		return &core.DatabaseError{Op: op, Err: ErrClosed}
	}

	run := r.db.View
	if writable {
		run = r.db.Update
	}

	var inner error
	err := run(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return fmt.Errorf("bucket %q missing", bucketName)
		}
		inner = fn(b)
		return inner
	})
	if err == nil {
		return nil
	}
	// Read callbacks report not-found and scan errors; those pass through.
	if inner != nil && !writable {
		return inner
	}
	return &core.DatabaseError{Op: op, Err: err}
}

func openError(err error) error {
	return &core.DatabaseError{Op: "open", Err: err}
}
