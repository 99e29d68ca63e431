package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/nfa"
)

func newUpdateCmd(a *app) *cobra.Command {
	var id, title, content string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the title and/or content of a note",
		Long: `Update changes only the fields given on the command line.
The note's update time is refreshed even when no field is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only flags set explicitly are applied; an empty string is a valid value.
			var titlePtr, contentPtr *string
			if cmd.Flags().Changed("title") {
				titlePtr = &title
			}
			if cmd.Flags().Changed("content") {
				contentPtr = &content
			}

			m, err := a.open()
			if err != nil {
				return err
			}
			defer m.Close()

			out := cmd.OutOrStdout()

			_, err = m.Update(cmd.Context(), id, titlePtr, contentPtr)
			if errors.Is(err, nfa.ErrNoteNotFound) {
				fmt.Fprintln(out, "Note not found")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "Note updated successfully")
			return nil
		},
	}

	cmd.Flags().StringVarP(&id, "id", "i", "", "Note ID")
	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "New content")
	cmd.MarkFlagRequired("id")
	return cmd
}
