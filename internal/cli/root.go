package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/faizmokh/ij/internal/config"
	"github.com/faizmokh/ij/internal/editor"
	"github.com/faizmokh/ij/internal/files"
	"github.com/faizmokh/ij/internal/logbook"
	"github.com/faizmokh/ij/internal/logging"
	"github.com/faizmokh/ij/internal/ui"
	"github.com/faizmokh/ij/internal/version"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Dependencies are the collaborators the root command needs. Zero values fall
// back to the real process environment.
type Dependencies struct {
	Manager *files.Manager
	Config  config.Config
	Logger  *slog.Logger
	Now     logbook.Clock

	Stdin      io.Reader
	StdinPiped func() bool

	Prompt     func(ctx context.Context) (string, error)
	OpenEditor func(ctx context.Context, command, path string) (int, error)
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Stdin == nil {
		d.Stdin = strings.NewReader("")
	}
	if d.StdinPiped == nil {
		d.StdinPiped = func() bool { return false }
	}
	if d.Prompt == nil {
		d.Prompt = func(ctx context.Context) (string, error) {
			return ui.Prompt(ctx, os.Stdin, os.Stdout)
		}
	}
	if d.OpenEditor == nil {
		d.OpenEditor = func(ctx context.Context, command, path string) (int, error) {
			return editor.Open(ctx, command, path, editor.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
		}
	}
	if strings.TrimSpace(d.Config.Editor) == "" {
		d.Config.Editor = config.DefaultEditor
	}
	return d
}

// NewRootCommand creates the ij command. All modes hang off flags on this one
// command; there are no subcommands.
func NewRootCommand(ctx context.Context, deps Dependencies) *cobra.Command {
	deps = deps.withDefaults()

	var inv Invocation

	cmd := &cobra.Command{
		Use:   "ij [message...]",
		Short: "Interstitial journaling: jot down what you are doing, right now.",
		Long: `ij appends timestamped entries to one Markdown file per day.

  ij                  show today's entries
  ij <message...>     log a message (also: echo message | ij)
  ij -i               log a message through an interactive prompt
  ij -s <keyword>     search every day for a keyword
  ij -l <n>           show the last n days
  ij -e               open today's file in $EDITOR`,
		Version: version.Info(),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if deps.Manager == nil {
				return errors.New("log directory not configured")
			}
			inv.Args = args
			inv.SearchSet = cmd.Flags().Changed("search")
			inv.DaysSet = cmd.Flags().Changed("list")
			if len(args) == 0 && !inv.Interactive && !inv.Edit && !inv.SearchSet && !inv.DaysSet {
				inv.StdinPiped = deps.StdinPiped()
			}

			intent, err := ParseIntent(inv)
			if err != nil {
				return err
			}
			deps.Logger.Debug("dispatch", "mode", intent.Mode.String(), "dir", deps.Manager.BasePath())
			return run(ctx, cmd, deps, intent)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	// Everything after the first word of a message belongs to the message.
	flags.SetInterspersed(false)
	flags.BoolVarP(&inv.Interactive, "interactive", "i", false, "Prompt for a message interactively")
	flags.StringVarP(&inv.Search, "search", "s", "", "Search all days for a keyword")
	flags.BoolVarP(&inv.Edit, "edit", "e", false, "Open today's log in $EDITOR")
	flags.IntVarP(&inv.Days, "list", "l", 0, "Show entries for the last N days")
	flags.BoolVar(&inv.CaseSensitive, "case-sensitive", false, "Match the -s keyword with case sensitivity")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, deps Dependencies, intent Intent) error {
	switch intent.Mode {
	case ModeShowToday:
		return runShowToday(ctx, cmd, deps)
	case ModeLog:
		return runLog(ctx, cmd, deps, intent.Message)
	case ModeLogPiped:
		return runLogPiped(ctx, cmd, deps)
	case ModeInteractive:
		return runInteractive(ctx, cmd, deps)
	case ModeSearch:
		return runSearch(ctx, cmd, deps, intent.Keyword, intent.CaseSensitive)
	case ModeEdit:
		return runEdit(ctx, deps)
	case ModeHistory:
		return runHistory(ctx, cmd, deps, intent.Days)
	default:
		return fmt.Errorf("unhandled mode %s", intent.Mode)
	}
}

// NewDependencies resolves configuration, logging and storage from the
// process environment.
func NewDependencies(lookup config.LookupFunc, stderr io.Writer) (Dependencies, error) {
	cfg, err := config.Load(lookup)
	if err != nil {
		return Dependencies{}, err
	}

	base, err := files.ResolveBasePath(cfg.LogDir)
	if err != nil {
		return Dependencies{}, fmt.Errorf("resolve log directory: %w", err)
	}
	manager, err := files.NewManager(base)
	if err != nil {
		return Dependencies{}, fmt.Errorf("resolve log directory: %w", err)
	}

	return Dependencies{
		Manager:    manager,
		Config:     cfg,
		Logger:     logging.New(stderr, cfg.LogLevel),
		Now:        time.Now,
		Stdin:      os.Stdin,
		StdinPiped: func() bool { return stdinPiped(os.Stdin) },
	}, nil
}

// stdinPiped reports whether f carries input from a pipe or redirected file.
// A terminal or a character device such as /dev/null does not count.
func stdinPiped(f *os.File) bool {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	mode := info.Mode()
	return mode&os.ModeNamedPipe != 0 || mode.IsRegular()
}

// exitCode maps the outcome of a command to a process exit status, reporting
// errors on stderr.
func exitCode(cmd *cobra.Command, err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	fmt.Fprintf(stderr, "error: %v\n", err)
	if isUsageError(err) {
		if cmd != nil {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return exitUsage
	}
	return exitError
}

// Main wires the real environment, runs ij with os.Args and returns the exit status.
func Main(ctx context.Context) int {
	deps, err := NewDependencies(os.LookupEnv, os.Stderr)
	if err != nil {
		return exitCode(nil, err, os.Stderr)
	}

	cmd := NewRootCommand(ctx, deps)
	return exitCode(cmd, cmd.ExecuteContext(ctx), os.Stderr)
}
