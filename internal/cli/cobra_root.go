package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository/sqlite"
	"task-tracker/internal/services"
)

// Version is reported by --version; set at build time with -ldflags.
var Version = "dev"

// RepositoryOpener opens the task store described by the final configuration
type RepositoryOpener func(cfg *config.Config) (sqlite.Repository, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
	open   RepositoryOpener
	clock  services.Clock

	repo sqlite.Repository
	app  *App
}

// NewRootCommand creates the root cobra command with global flags.
// The repository is opened once flags have been applied to cfg.
func NewRootCommand(cfg *config.Config, open RepositoryOpener) *RootCommand {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if open == nil {
		open = config.CreateRepository
	}

	root := &RootCommand{
		config: cfg,
		open:   open,
	}

	root.cmd = &cobra.Command{
		Use:   "td",
		Short: "A command-line task tracker",
		Long: `td keeps a single list of tasks in a local SQLite file.

Tasks are addressed by their position in the list, starting at 1. Deleting a
task moves every later task up by one.

EXAMPLES:
  td add Buy milk                           # Add a task
  td add Pay rent -d "2024-07-01 09:00:00"  # Add a task with a due date
  td ls                                     # List tasks
  td check 2                                # Mark task 2 as done
  td rename 1 Buy oat milk                  # Rename task 1
  td delete 3                               # Delete task 3
  td report                                 # Completion and lateness summary

CONFIGURATION:
  Priority: command-line flags > environment variables > config file > defaults
  Config file: ~/.td/config.toml (override with TD_CONFIG)

  TD_DB                      Database file path (wins over dir and filename)
  TD_DB_DIR                  Database directory (default: ~/.td)
  TD_DB_FILENAME             Database filename (default: td.db)
  TD_DB_QUERY_TIMEOUT        Query timeout (default: 10s)
  TD_DB_WRITE_TIMEOUT        Write timeout (default: 5s)
  TD_SIGN_WARNING            Late marker (default: ⚠)
  TD_SIGN_DONE               Done marker (default: ✔)
  TD_SIGN_NOT_DONE           Not-done marker (default: a space)
  TD_DISPLAY_COLOR           Color the markers (default: false)
  TD_APP_TIMEOUT             Per-command timeout (default: 60s)
  TD_APP_VERBOSE             Verbose output (default: false)
  TD_DEBUG                   Debug logging when set`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return root.Close()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// SetClock replaces the clock used to decide lateness
func (r *RootCommand) SetClock(clock services.Clock) {
	r.clock = clock
}

// Command exposes the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command. The repository is closed even when the
// command fails.
func (r *RootCommand) Execute() error {
	err := r.cmd.Execute()
	if closeErr := r.Close(); err == nil {
		err = closeErr
	}
	return err
}

// Close releases the repository if one was opened
func (r *RootCommand) Close() error {
	if r.repo == nil {
		return nil
	}
	err := r.repo.Close()
	r.repo = nil
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.String("db", "", "Database file path (overrides TD_DB)")
	flags.String("db-dir", "", "Database directory (overrides TD_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TD_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TD_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TD_DB_WRITE_TIMEOUT)")

	// Display configuration
	flags.String("sign-warning", "", "Late marker (overrides TD_SIGN_WARNING)")
	flags.String("sign-done", "", "Done marker (overrides TD_SIGN_DONE)")
	flags.String("sign-not-done", "", "Not-done marker (overrides TD_SIGN_NOT_DONE)")
	flags.Bool("color", false, "Color the markers (overrides TD_DISPLAY_COLOR)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Per-command timeout (overrides TD_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable verbose output (overrides TD_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	var date string
	addCmd := &cobra.Command{
		Use:   "add <name...>",
		Short: "Add a task",
		Long: `Add a task. All arguments form the task name.

The optional due date must be exactly "YYYY-MM-DD HH:MM:SS" and is read in
local time.`,
		// Args runs before the store is opened.
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return NewErrorHandler().HandleSimple(errors.NewValidationError("no name was provided", nil))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewAddCommand(r.app).Execute(ctx, args, date)
		},
	}
	addCmd.Flags().StringVarP(&date, "date", "d", "", "Due date, YYYY-MM-DD HH:MM:SS")

	listCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List tasks",
		Long:    "List every task with its position, done marker, due date, and a warning marker once the due date has passed.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewListCommand(r.app).Execute(ctx)
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check <position>",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewCheckCommand(r.app).Execute(ctx, args)
		},
	}

	uncheckCmd := &cobra.Command{
		Use:   "uncheck <position>",
		Short: "Mark a task as not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewUncheckCommand(r.app).Execute(ctx, args)
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename <position> <name...>",
		Short: "Rename a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewRenameCommand(r.app).Execute(ctx, args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:     "delete <position>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Long:    "Delete a task. This cannot be undone, and every later task moves up one position.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewDeleteCommand(r.app).Execute(ctx, args)
		},
	}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Show completion and lateness figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewReportCommand(r.app).Execute(ctx)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		checkCmd,
		uncheckCmd,
		renameCmd,
		deleteCmd,
		reportCmd,
	)
}

// setup applies flag overrides, configures logging and opens the repository
func (r *RootCommand) setup(cmd *cobra.Command) error {
	config.ApplyOverrides(r.config, r.overridesFromFlags(cmd))
	if err := r.config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logging.SetVerbose(r.config.Application.Verbose)
	logging.Debug("configuration loaded", "db", r.config.GetDatabasePath(), "timeout", r.config.Application.Timeout)

	repo, err := r.open(r.config)
	if err != nil {
		return err
	}
	r.repo = repo
	r.app = NewApp(api.New(repo, r.clock), r.config, cmd.OutOrStdout())
	return nil
}

// overridesFromFlags collects the global flags the user actually set
func (r *RootCommand) overridesFromFlags(cmd *cobra.Command) *config.ConfigOverrides {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("db") {
		v, _ := flags.GetString("db")
		overrides.DBPath = &v
	}
	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("db-query-timeout") {
		v, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &v
	}
	if flags.Changed("db-write-timeout") {
		v, _ := flags.GetDuration("db-write-timeout")
		overrides.DBWriteTimeout = &v
	}

	if flags.Changed("sign-warning") {
		v, _ := flags.GetString("sign-warning")
		overrides.WarningSign = &v
	}
	if flags.Changed("sign-done") {
		v, _ := flags.GetString("sign-done")
		overrides.DoneSign = &v
	}
	if flags.Changed("sign-not-done") {
		v, _ := flags.GetString("sign-not-done")
		overrides.NotDoneSign = &v
	}
	if flags.Changed("color") {
		v, _ := flags.GetBool("color")
		overrides.Color = &v
	}

	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	return overrides
}

// commandContext bounds a command by the configured application timeout
func (r *RootCommand) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, r.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}
