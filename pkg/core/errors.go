package core

import (
	"errors"
	"fmt"
)

// ErrNoteNotFound is returned by Get and Update when no note has the
// requested ID. It is an expected outcome, never a storage fault.
//
// Delete does not return it: removing a missing note succeeds.
var ErrNoteNotFound = errors.New("note not found")

// DatabaseError reports a failure of the underlying store
// (open, read, write, remove or scan).
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error: %s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// SerializationError reports a failure to encode or decode a note.
type SerializationError struct {
	Op  string
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization error: %s: %v", e.Op, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is ErrNoteNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoteNotFound)
}

// IsDatabase reports whether err carries a DatabaseError.
func IsDatabase(err error) bool {
	var target *DatabaseError
	return errors.As(err, &target)
}

// IsSerialization reports whether err carries a SerializationError.
func IsSerialization(err error) bool {
	var target *SerializationError
	return errors.As(err, &target)
}

func dbError(op string, err error) error {
	if err == nil || IsDatabase(err) || IsNotFound(err) {
		return err
	}
	return &DatabaseError{Op: op, Err: err}
}
