package platform

import (
	"context"

	"github.com/aretw0/nfa/pkg/codec"
	"github.com/aretw0/nfa/pkg/core"
)

// New opens (or creates) the note store at path and returns its manager.
//
//	m, err := nfa.Open("/home/me/.nfa", nfa.WithCacheSize(128))
func New(path string, opts ...Option) (*core.Manager, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// 1. Open the store (bbolt unless injected)
	store, err := initStore(context.Background(), path, o)
	if err != nil {
		return nil, err
	}

	// 2. Wiring
	c := o.codec
	if c == nil {
		c = codec.Binary{}
	}

	m, err := core.NewManager(core.ManagerConfig{
		Store:       store,
		Codec:       c,
		IDGenerator: o.idGenerator,
		Clock:       o.clock,
		Logger:      o.logger,
	})
	if err != nil {
		store.Close()
		return nil, err
	}

	if o.logger != nil {
		o.logger.Debug("note manager ready", "path", path)
	}
	return m, nil
}
