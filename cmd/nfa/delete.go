package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/nfa"
)

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			m, err := a.open()
			if err != nil {
				return err
			}
			defer m.Close()

			out := cmd.OutOrStdout()

			// The manager deletes missing notes silently, so check first to
			// tell the user.
			if _, err := m.Get(cmd.Context(), id); err != nil {
				if errors.Is(err, nfa.ErrNoteNotFound) {
					fmt.Fprintln(out, "Note not found")
					return nil
				}
				return err
			}

			if err := m.Delete(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintln(out, "Note deleted successfully")
			return nil
		},
	}
}
