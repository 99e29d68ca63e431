package core

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/rs/xid"
)

// IDGenerator produces opaque, fixed-format note identifiers.
type IDGenerator func() string

// RandomIDLen is the length of identifiers produced by RandomID.
const RandomIDLen = 16

// RandomID renders 64 random bits as 16 lowercase hex characters.
// Collisions are not checked against the store; at 64 bits they are
// negligible for a personal note store, not impossible.
func RandomID() string {
	var b [8]byte
	// crypto/rand.Read never returns an error since Go 1.24.
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// SortableID returns a 20 character, time-ordered identifier.
func SortableID() string {
	return xid.New().String()
}
