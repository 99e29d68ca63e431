package bolt

import (
	"context"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path    string `json:"path"`
	File    string `json:"file"`
	Open    bool   `json:"open"`
	Notes   int    `json:"notes"`
	Timeout string `json:"timeout"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	open := r.db != nil
	r.mu.RUnlock()

	state := RepositoryState{
		Path:    r.Path,
		File:    r.File(),
		Open:    open,
		Timeout: r.config.Timeout.String(),
	}
	if open {
		if n, err := r.Count(context.Background()); err == nil {
			state.Notes = n
		}
	}
	return state
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "bolt"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
