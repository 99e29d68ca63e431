package main

import (
	"encoding/json"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/nfa"
)

func newListCmd(a *app) *cobra.Command {
	var (
		listJSON bool
		match    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all notes from first to last updated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if match != "" && !doublestar.ValidatePattern(match) {
				return fmt.Errorf("invalid --match pattern %q", match)
			}

			m, err := a.open()
			if err != nil {
				return err
			}
			defer m.Close()

			notes, err := m.List(cmd.Context())
			if err != nil {
				return err
			}

			// Filter
			var filtered []nfa.Note
			for _, note := range notes {
				if match != "" {
					ok, err := doublestar.Match(match, note.Title)
					if err != nil {
						return err
					}
					if !ok {
						continue
					}
				}
				filtered = append(filtered, note)
			}

			out := cmd.OutOrStdout()

			if listJSON {
				views := make([]noteView, 0, len(filtered))
				for _, n := range filtered {
					views = append(views, toView(n))
				}
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(views)
			}

			if len(filtered) == 0 {
				fmt.Fprintln(out, "No notes found")
				return nil
			}

			for _, note := range filtered {
				fmt.Fprintf(out, "ID: %s\n", note.ID)
				fmt.Fprintf(out, "Title: %s\n", note.Title)
				fmt.Fprintf(out, "Content: %s\n", note.Content)
				fmt.Fprintln(out, "---")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&match, "match", "", "Only list notes whose title matches a glob (e.g. 'Meeting*')")
	return cmd
}
