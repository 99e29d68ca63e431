package core

import (
	"github.com/aretw0/introspection"
)

// ManagerState exposes internal state for observability.
type ManagerState struct {
	StoreType string `json:"store_type"`
	Store     any    `json:"store,omitempty"`
}

// State implements introspection.Introspectable.
func (m *Manager) State() any {
	state := ManagerState{StoreType: "unknown"}

	if comp, ok := m.store.(introspection.Component); ok {
		state.StoreType = comp.ComponentType()
	}
	if in, ok := m.store.(introspection.Introspectable); ok {
		state.Store = in.State()
	}

	return state
}

// ComponentType implements introspection.Component.
func (m *Manager) ComponentType() string {
	return "manager"
}

var _ introspection.Introspectable = (*Manager)(nil)
var _ introspection.Component = (*Manager)(nil)
