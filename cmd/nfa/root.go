package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/nfa"
	"github.com/aretw0/nfa/internal/config"
	"github.com/spf13/cobra"
)

// app carries the persistent flags shared by every command.
type app struct {
	verbose    bool
	configPath string
	dataDir    string

	conf   *config.Config
	logger *slog.Logger
}

const rootExamples = `  Quick note, title inferred:
  $ nfa "This is a quick note"

  Create note with title:
  $ nfa new -t "Meeting Notes" -c "Discuss project timeline"

  List all notes from first to last:
  $ nfa list

  Show specific note:
  $ nfa show <note-id>

  Update note:
  $ nfa update -i <note-id> -t "New Title" -c "New Content"

  Delete note:
  $ nfa delete <note-id>`

// newRootCmd builds the command tree. The root command itself creates a
// quick note from its single argument.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "nfa [QUICK_NOTE]",
		Short: "A simple note-taking application",
		Long: `A command-line note-taking application that allows you to create, list, show, update, and delete notes.
Notes are kept in an embedded database under ~/.nfa (see --data-dir).`,
		Example:       rootExamples,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(a.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if a.dataDir != "" {
				conf.DataDir = a.dataDir
			}

			level, err := conf.Level()
			if err != nil {
				return err
			}
			if a.verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			a.conf = conf
			slog.SetDefault(a.logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, "No content provided. Use --help for usage information.")
				return nil
			}

			content := args[0]
			if content == "" {
				fmt.Fprintln(out, "Error: Content cannot be empty")
				return nil
			}

			m, err := a.open()
			if err != nil {
				return err
			}
			defer m.Close()

			note, err := m.Create(cmd.Context(), nfa.InferTitle(content), content)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Created note with ID: %s\n", note.ID)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "Directory holding the note database")

	rootCmd.AddCommand(
		newNewCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newUpdateCmd(a),
		newDeleteCmd(a),
		newInfoCmd(a),
		newExportCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the command tree and reports errors on stderr.
func Execute() error {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// open opens the note store described by the loaded configuration.
func (a *app) open() (*nfa.Manager, error) {
	opts := []nfa.Option{
		nfa.WithLogger(a.logger),
		nfa.WithCacheSize(a.conf.CacheSize),
		nfa.WithOpenTimeout(a.conf.OpenTimeout),
	}
	if a.conf.IDScheme == config.IDSchemeSortable {
		opts = append(opts, nfa.WithSortableIDs())
	}

	a.logger.Debug("opening notes", "data_dir", a.conf.DataDir)
	return nfa.Open(a.conf.DataDir, opts...)
}
