package nfa_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/nfa"
)

// Example_basic demonstrates how to open a store, create a note and read it back.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "nfa-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	m, err := nfa.Open(tmpDir)
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	ctx := context.Background()

	note, err := m.Create(ctx, "Meeting Notes", "Discuss project timeline")
	if err != nil {
		log.Fatal(err)
	}

	got, err := m.Get(ctx, note.ID)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found note: %s\n", got.Title)
	// Output:
	// Found note: Meeting Notes
}

// Example_notFound shows the asymmetric handling of missing notes.
func Example_notFound() {
	tmpDir, err := os.MkdirTemp("", "nfa-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	m, err := nfa.Open(tmpDir)
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	ctx := context.Background()

	_, err = m.Get(ctx, "0123456789abcdef")
	fmt.Println("get:", errors.Is(err, nfa.ErrNoteNotFound))

	err = m.Delete(ctx, "0123456789abcdef")
	fmt.Println("delete:", err)
	// Output:
	// get: true
	// delete: <nil>
}

// Example_list shows notes coming back in update order.
func Example_list() {
	tmpDir, err := os.MkdirTemp("", "nfa-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	m, err := nfa.Open(tmpDir)
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	ctx := context.Background()

	first, _ := m.Create(ctx, "Note 1", "Content 1")
	_, _ = m.Create(ctx, "Note 2", "Content 2")

	title := "Note 1 (edited)"
	if _, err := m.Update(ctx, first.ID, &title, nil); err != nil {
		log.Fatal(err)
	}

	notes, err := m.List(ctx)
	if err != nil {
		log.Fatal(err)
	}
	for _, n := range notes {
		fmt.Println(n.Title)
	}
	// Output:
	// Note 2
	// Note 1 (edited)
}
