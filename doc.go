// Package nfa is the Composition Root for the nfa note store.
//
// It connects the core note logic (pkg/core) with the embedded storage
// adapter (pkg/adapters/bolt) and the binary codec (pkg/codec).
//
// Notes are stored in a single bbolt file inside a directory of your choice,
// keyed by a 16 character hex identifier. Every operation is synchronous and
// durable when it returns.
//
// Usage:
//
//	m, err := nfa.Open("/home/me/.nfa", nfa.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	defer m.Close()
//
//	note, err := m.Create(ctx, "Meeting Notes", "Discuss project timeline")
//
//	// Absence is a distinct outcome, not a storage fault.
//	_, err = m.Get(ctx, "0123456789abcdef")
//	if errors.Is(err, nfa.ErrNoteNotFound) {
//		...
//	}
package nfa
