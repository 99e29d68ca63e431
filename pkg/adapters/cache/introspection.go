package cache

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes cache statistics and the inner store state.
type StoreState struct {
	Entries   int    `json:"entries"`
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	InnerType string `json:"inner_type"`
	Inner     any    `json:"inner,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.Lock()
	state := StoreState{
		Entries:   s.lru.Len(),
		Hits:      s.hits,
		Misses:    s.misses,
		InnerType: "unknown",
	}
	s.mu.Unlock()

	if comp, ok := s.inner.(introspection.Component); ok {
		state.InnerType = comp.ComponentType()
	}
	if in, ok := s.inner.(introspection.Introspectable); ok {
		state.Inner = in.State()
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "cache"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
