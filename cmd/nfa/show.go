package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/aretw0/nfa"
)

func newShowCmd(a *app) *cobra.Command {
	var showJSON bool

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.open()
			if err != nil {
				return err
			}
			defer m.Close()

			out := cmd.OutOrStdout()

			note, err := m.Get(cmd.Context(), args[0])
			if errors.Is(err, nfa.ErrNoteNotFound) {
				fmt.Fprintln(out, "Note not found")
				return nil
			}
			if err != nil {
				return err
			}

			if showJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(toView(note))
			}

			fmt.Fprintf(out, "Title: %s\n", note.Title)
			fmt.Fprintf(out, "Content: %s\n", note.Content)
			fmt.Fprintf(out, "Created: %s\n", stamp(note.CreatedAt))
			fmt.Fprintf(out, "Updated: %s\n", stamp(note.UpdatedAt))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	return cmd
}

func stamp(t time.Time) string {
	return fmt.Sprintf("%s (%s)", t.Local().Format(time.RFC3339), humanize.Time(t))
}
