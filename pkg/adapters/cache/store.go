// Package cache provides a read-through LRU decorator for core.Store.
package cache

import (
	"context"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/aretw0/nfa/pkg/core"
)

// Store caches recently read or written values of an inner core.Store.
//
// Writes reach the inner store first; the cache only changes once they
// succeed. Misses and writes hold the same lock, so a cached value is never
// older than the last write completed through this Store.
type Store struct {
	inner core.Store
	lru   *lru.Cache[string, []byte]

	mu     sync.Mutex
	hits   uint64
	misses uint64
}

var _ core.Store = (*Store)(nil)

// New wraps inner with an LRU of the given number of entries.
func New(inner core.Store, size int) (*Store, error) {
	c, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return &Store{inner: inner, lru: c}, nil
}

// Get implements core.Store.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := s.lru.Get(key); ok {
		s.mu.Lock()
		s.hits++
		s.mu.Unlock()
		return clone(v), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.misses++

	// A writer may have filled the entry while we waited for the lock.
	if v, ok := s.lru.Get(key); ok {
		return clone(v), nil
	}

	v, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	s.lru.Add(key, clone(v))
	return v, nil
}

// Put implements core.Store.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inner.Put(ctx, key, value); err != nil {
		// The inner state is unknown after a failed write.
		s.lru.Remove(key)
		return err
	}
	s.lru.Add(key, clone(value))
	return nil
}

// Delete implements core.Store.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lru.Remove(key)
	return s.inner.Delete(ctx, key)
}

// Scan implements core.Store. Full scans bypass the cache.
func (s *Store) Scan(ctx context.Context, fn func(key string, value []byte) error) error {
	return s.inner.Scan(ctx, fn)
}

// Close implements core.Store.
func (s *Store) Close() error {
	s.lru.Purge()
	return s.inner.Close()
}

func clone(v []byte) []byte {
	return append([]byte(nil), v...)
}
