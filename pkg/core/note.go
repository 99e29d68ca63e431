package core

import (
	"slices"
	"time"
	"unicode/utf8"
)

// Note is the central entity of the domain.
// It is a value type: copies handed to callers have no binding to the store.
type Note struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewNote builds a note with a fresh random identifier.
// Uniqueness is probabilistic: the store is not consulted.
func NewNote(title, content string) Note {
	return newNote(RandomID(), title, content, time.Now())
}

func newNote(id, title, content string, now time.Time) Note {
	now = normalizeTime(now)
	return Note{
		ID:        id,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Compare orders notes by UpdatedAt only.
// Notes with different content but equal UpdatedAt compare as 0.
func Compare(a, b Note) int {
	return a.UpdatedAt.Compare(b.UpdatedAt)
}

// Before reports whether n was last updated before other.
func (n Note) Before(other Note) bool {
	return Compare(n, other) < 0
}

// Equal reports full structural equality, every field included.
func (n Note) Equal(other Note) bool {
	return n.ID == other.ID &&
		n.Title == other.Title &&
		n.Content == other.Content &&
		n.CreatedAt.Equal(other.CreatedAt) &&
		n.UpdatedAt.Equal(other.UpdatedAt)
}

// SortNotes sorts ascending by UpdatedAt. Ties keep their input order.
func SortNotes(notes []Note) {
	slices.SortStableFunc(notes, Compare)
}

// touch moves UpdatedAt to now, or one nanosecond past the current value
// when the clock has not advanced.
func (n *Note) touch(now time.Time) {
	now = normalizeTime(now)
	if floor := n.UpdatedAt.Add(time.Nanosecond); now.Before(floor) {
		now = floor
	}
	n.UpdatedAt = now
}

// normalizeTime drops the monotonic reading and pins the location to UTC so
// a decoded note is structurally identical to the one that was encoded.
func normalizeTime(t time.Time) time.Time {
	return t.UTC()
}

const quickTitleLen = 10

// InferTitle derives a title for a quick note from its first characters.
func InferTitle(content string) string {
	if utf8.RuneCountInString(content) <= quickTitleLen {
		return content
	}
	runes := []rune(content)
	return string(runes[:quickTitleLen]) + "..."
}
