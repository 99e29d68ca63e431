package core

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"
)

// Manager mediates all access to stored notes.
//
// Every call runs to completion on the caller's goroutine. Single calls are
// atomic per key through the same Store; Update is a read-modify-write and
// is not atomic as a whole, so concurrent updates of one note may lose
// field changes (last write wins).
type Manager struct {
	store  Store
	codec  Codec
	newID  IDGenerator
	now    func() time.Time
	logger *slog.Logger
}

// ManagerConfig holds the collaborators of a Manager.
// Zero values fall back to RandomID, time.Now and a discarding logger.
type ManagerConfig struct {
	Store       Store
	Codec       Codec
	IDGenerator IDGenerator
	Clock       func() time.Time
	Logger      *slog.Logger
}

// NewManager creates a Manager over an opened store.
func NewManager(cfg ManagerConfig) (*Manager, error) {
	if cfg.Store == nil {
		return nil, errors.New("manager requires a store")
	}
	if cfg.Codec == nil {
		return nil, errors.New("manager requires a codec")
	}

	m := &Manager{
		store:  cfg.Store,
		codec:  cfg.Codec,
		newID:  cfg.IDGenerator,
		now:    cfg.Clock,
		logger: cfg.Logger,
	}
	if m.newID == nil {
		m.newID = RandomID
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return m, nil
}

// Create stores a new note and returns it.
// Encoding happens before any write, so a failed encode leaves the store untouched.
func (m *Manager) Create(ctx context.Context, title, content string) (Note, error) {
	note := newNote(m.newID(), title, content, m.now())

	if err := m.put(ctx, note); err != nil {
		return Note{}, err
	}

	m.logger.Debug("note created", "id", note.ID)
	return note, nil
}

// Get returns the note stored under id, or ErrNoteNotFound.
func (m *Manager) Get(ctx context.Context, id string) (Note, error) {
	data, err := m.store.Get(ctx, id)
	if err != nil {
		return Note{}, dbError("get", err)
	}

	note, err := m.codec.Decode(data)
	if err != nil {
		return Note{}, &SerializationError{Op: "decode " + id, Err: err}
	}
	return note, nil
}

// Update applies the non-nil fields to the note and stamps a new UpdatedAt,
// even when nothing else changed. A missing note yields ErrNoteNotFound.
func (m *Manager) Update(ctx context.Context, id string, title, content *string) (Note, error) {
	note, err := m.Get(ctx, id)
	if err != nil {
		return Note{}, err
	}

	if title != nil {
		note.Title = *title
	}
	if content != nil {
		note.Content = *content
	}
	note.touch(m.now())

	if err := m.put(ctx, note); err != nil {
		return Note{}, err
	}

	m.logger.Debug("note updated", "id", note.ID, "title_changed", title != nil, "content_changed", content != nil)
	return note, nil
}

// Delete removes the note stored under id.
//
// A missing note is not an error, unlike Get and Update. Callers that need
// to report "not found" must check with Get first.
func (m *Manager) Delete(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, id); err != nil {
		return dbError("delete", err)
	}

	m.logger.Debug("note deleted", "id", id)
	return nil
}

// List decodes every stored note and returns them ascending by UpdatedAt.
// One undecodable record fails the whole listing.
func (m *Manager) List(ctx context.Context) ([]Note, error) {
	var notes []Note

	err := m.store.Scan(ctx, func(key string, value []byte) error {
		note, err := m.codec.Decode(value)
		if err != nil {
			return &SerializationError{Op: "decode " + key, Err: err}
		}
		notes = append(notes, note)
		return nil
	})
	if err != nil {
		if IsSerialization(err) {
			return nil, err
		}
		return nil, dbError("scan", err)
	}

	SortNotes(notes)
	return notes, nil
}

// Close releases the underlying store.
func (m *Manager) Close() error {
	if err := m.store.Close(); err != nil {
		return dbError("close", err)
	}
	return nil
}

func (m *Manager) put(ctx context.Context, note Note) error {
	data, err := m.codec.Encode(note)
	if err != nil {
		return &SerializationError{Op: "encode " + note.ID, Err: err}
	}
	if err := m.store.Put(ctx, note.ID, data); err != nil {
		return dbError("put", err)
	}
	return nil
}
