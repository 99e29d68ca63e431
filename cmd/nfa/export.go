package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/nfa/pkg/adapters/markdown"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export [dir]",
		Short: "Write every note to dir as a Markdown file with frontmatter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.open()
			if err != nil {
				return err
			}
			defer m.Close()

			notes, err := m.List(cmd.Context())
			if err != nil {
				return err
			}

			n, err := markdown.NewExporter(args[0], a.logger).Export(cmd.Context(), notes)
			if err != nil {
				return fmt.Errorf("export stopped after %d notes: %w", n, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d notes to %s\n", n, args[0])
			return nil
		},
	}
}
