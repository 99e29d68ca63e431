package bolt_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/aretw0/nfa/pkg/adapters/bolt"
	"github.com/aretw0/nfa/pkg/core"
)

// setupRepo opens a repository in a fresh temp directory.
func setupRepo(t *testing.T, opts ...func(*bolt.Config)) (*bolt.Repository, string) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "store")
	cfg := bolt.Config{
		Path:    dir,
		Timeout: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	repo, err := bolt.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo, dir
}

func TestInitialize(t *testing.T) {
	t.Run("Creates Directory and File", func(t *testing.T) {
		repo, dir := setupRepo(t)

		_, err := os.Stat(filepath.Join(dir, bolt.DefaultFileName))
		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, bolt.DefaultFileName), repo.File())
	})

	t.Run("Fails if MustExist and Missing", func(t *testing.T) {
		_, err := bolt.Open(context.Background(), bolt.Config{
			Path:      filepath.Join(t.TempDir(), "missing"),
			MustExist: true,
		})
		require.Error(t, err)
		assert.True(t, core.IsDatabase(err))
	})

	t.Run("Fails if Path is a File", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "plain")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

		_, err := bolt.Open(context.Background(), bolt.Config{Path: file})
		require.Error(t, err)
		assert.True(t, core.IsDatabase(err))
	})

	t.Run("Fails if Lock is Held", func(t *testing.T) {
		_, dir := setupRepo(t)

		start := time.Now()
		_, err := bolt.Open(context.Background(), bolt.Config{
			Path:    dir,
			Timeout: 200 * time.Millisecond,
		})
		require.Error(t, err)
		assert.True(t, core.IsDatabase(err))
		assert.True(t, errors.Is(err, bbolt.ErrTimeout), "expected timeout, got %v", err)
		// bbolt gives up one 50ms retry interval before the deadline.
		assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("Fails on Corrupt File", func(t *testing.T) {
		dir := t.TempDir()
		garbage := make([]byte, 8192)
		for i := range garbage {
			garbage[i] = 0xAB
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, bolt.DefaultFileName), garbage, 0600))

		_, err := bolt.Open(context.Background(), bolt.Config{Path: dir})
		require.Error(t, err)
		assert.True(t, core.IsDatabase(err))
	})
}

func TestCRUD(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, "a")
	assert.ErrorIs(t, err, core.ErrNoteNotFound)
	assert.False(t, core.IsDatabase(err))

	require.NoError(t, repo.Put(ctx, "a", []byte("one")))
	v, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), v)

	require.NoError(t, repo.Put(ctx, "a", []byte("two")))
	v, err = repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), v)

	// Returned values are copies.
	v[0] = 'X'
	v2, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), v2)

	require.NoError(t, repo.Delete(ctx, "a"))
	_, err = repo.Get(ctx, "a")
	assert.ErrorIs(t, err, core.ErrNoteNotFound)

	assert.NoError(t, repo.Delete(ctx, "a"))
}

func TestPut_EmptyKey(t *testing.T) {
	repo, _ := setupRepo(t)

	err := repo.Put(context.Background(), "", []byte("x"))
	require.Error(t, err)
	assert.True(t, core.IsDatabase(err))
}

func TestScan(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	for _, k := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Put(ctx, k, []byte("v-"+k)))
	}

	t.Run("Visits All Keys in Order", func(t *testing.T) {
		var keys []string
		err := repo.Scan(ctx, func(key string, value []byte) error {
			keys = append(keys, key)
			assert.Equal(t, "v-"+key, string(value))
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, keys)
	})

	t.Run("Callback Error Stops Scan", func(t *testing.T) {
		stop := errors.New("stop")
		visited := 0
		err := repo.Scan(ctx, func(string, []byte) error {
			visited++
			return stop
		})
		assert.Same(t, stop, err)
		assert.Equal(t, 1, visited)
	})

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestPersistence(t *testing.T) {
	repo, dir := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "k", []byte("durable")))
	require.NoError(t, repo.Close())

	reopened, err := bolt.Open(ctx, bolt.Config{Path: dir, MustExist: true})
	require.NoError(t, err)
	defer reopened.Close()

	v, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "durable", string(v))
}

func TestClosed(t *testing.T) {
	repo, _ := setupRepo(t)
	require.NoError(t, repo.Close())
	require.NoError(t, repo.Close())

	_, err := repo.Get(context.Background(), "k")
	assert.True(t, core.IsDatabase(err))
	assert.ErrorIs(t, err, bolt.ErrClosed)
}

func TestCanceledContext(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Put(ctx, "k", []byte("v"))
	assert.True(t, core.IsDatabase(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestState(t *testing.T) {
	repo, dir := setupRepo(t)
	require.NoError(t, repo.Put(context.Background(), "k", []byte("v")))

	state, ok := repo.State().(bolt.RepositoryState)
	require.True(t, ok)
	assert.Equal(t, dir, state.Path)
	assert.True(t, state.Open)
	assert.Equal(t, 1, state.Notes)
	assert.Equal(t, "bolt", repo.ComponentType())
}
