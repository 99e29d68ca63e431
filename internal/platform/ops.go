package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/nfa/pkg/adapters/bolt"
	"github.com/aretw0/nfa/pkg/adapters/cache"
	"github.com/aretw0/nfa/pkg/core"
)

// Init opens the store rooted at path according to the options.
// It returns the configured core.Store.
func Init(ctx context.Context, path string, opts ...Option) (core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initStore(ctx, path, o)
}

func initStore(ctx context.Context, path string, o *options) (core.Store, error) {
	// 1. Check for injected store
	store := o.store
	if store == nil {
		if path == "" {
			return nil, &core.DatabaseError{Op: "open", Err: fmt.Errorf("empty store path")}
		}

		repo, err := bolt.Open(ctx, bolt.Config{
			Path:      path,
			Timeout:   o.openTimeout,
			MustExist: o.mustExist,
			Logger:    o.logger,
		})
		if err != nil {
			return nil, err
		}
		store = repo
	}

	// 2. Optional read cache
	if o.cacheSize > 0 {
		cached, err := cache.New(store, o.cacheSize)
		if err != nil {
			store.Close()
			return nil, err
		}
		if o.logger != nil {
			o.logger.Debug("read cache enabled", "size", o.cacheSize)
		}
		store = cached
	}

	return store, nil
}
