package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"todo-cli/internal/format"
	"todo-cli/internal/logging"
	"todo-cli/internal/session"
	"todo-cli/internal/store"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	Backend    string
	Format     string
	LogLevel   string
	PrettyJSON bool

	cfg     store.Config
	logger  *log.Logger
	closers []io.Closer
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "todo",
		Short:        "Local to-do list (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  todo

  # Scriptable commands
  todo add "Buy milk" --details "2 litres"
  todo list --format text
  todo toggle <item-id>
  todo move 0 2
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// The TUI owns the terminal; it only logs when a log file is configured.
		return app.setup(cmd, cmd == cmd.Root())
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.close()
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", "", "Directory holding the saved list (env TODO_DIR)")
	cmd.PersistentFlags().StringVar(&app.Backend, "backend", "", "Storage backend: file|sqlite|memory (env TODO_BACKEND)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", "", "Output format: json|yaml|text (env TODO_FORMAT)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level: debug|info|warn|error (env TODO_LOG_LEVEL)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newToggleCmd(app))
	cmd.AddCommand(newDeleteCmd(app))
	cmd.AddCommand(newMoveCmd(app))
	cmd.AddCommand(newDispatchCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newPublishCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// setup resolves configuration (defaults -> config file -> env -> flags) and
// builds the logger.
func (app *App) setup(cmd *cobra.Command, tui bool) error {
	cfg, err := store.LoadConfig()
	if err != nil {
		return writeErr(cmd, fmt.Errorf("load config: %w", err))
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.Dir = app.Dir
	}
	if flags.Changed("backend") {
		cfg.Backend = app.Backend
	}
	if flags.Changed("format") {
		cfg.Format = app.Format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = app.LogLevel
	}
	if cfg.Backend != store.BackendMemory {
		if err := cfg.ResolveDir(); err != nil {
			return writeErr(cmd, err)
		}
	}
	app.cfg = cfg

	logger, closer, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Writer:  cmd.ErrOrStderr(),
		Discard: tui,
	})
	if err != nil {
		return writeErr(cmd, err)
	}
	app.logger = logger
	app.closers = append(app.closers, closer)
	return nil
}

func (app *App) close() error {
	var errs []error
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	app.closers = nil
	return errors.Join(errs...)
}

// openPersister opens the configured slot without reading or writing it.
// Callers must run done when finished.
func openPersister(ctx context.Context, app *App) (p *store.Persister, done func(), err error) {
	slot, err := store.OpenSlot(ctx, app.cfg)
	if err != nil {
		return nil, nil, err
	}
	done = func() {
		if err := slot.Close(); err != nil && app.logger != nil {
			app.logger.Warn("close slot", "err", err)
		}
	}
	return store.NewPersister(slot, app.cfg.Key, app.logger), done, nil
}

// openSession opens the configured slot and restores the list from it.
// Callers must run done when finished.
func openSession(ctx context.Context, app *App) (s *session.Session, p *store.Persister, done func(), err error) {
	p, done, err = openPersister(ctx, app)
	if err != nil {
		return nil, nil, nil, err
	}
	s, err = session.Open(ctx, p, session.WithLogger(app.logger))
	if err != nil {
		done()
		return nil, nil, nil, err
	}
	return s, p, done, nil
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.cfg.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
