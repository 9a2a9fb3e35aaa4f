package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/faizmokh/ij/internal/logbook"
	"github.com/faizmokh/ij/internal/ui"
)

func runLog(ctx context.Context, cmd *cobra.Command, deps Dependencies, message string) error {
	writer := logbook.NewWriter(deps.Manager, deps.Now)
	entry, err := writer.Append(ctx, message)
	if err != nil {
		if errors.Is(err, logbook.ErrEmptyMessage) {
			fmt.Fprintln(cmd.OutOrStdout(), "Empty message, nothing logged.")
			return nil
		}
		return fmt.Errorf("log entry: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged: %s\n", entry)
	return nil
}

func runLogPiped(ctx context.Context, cmd *cobra.Command, deps Dependencies) error {
	data, err := io.ReadAll(deps.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return runLog(ctx, cmd, deps, string(data))
}

func runInteractive(ctx context.Context, cmd *cobra.Command, deps Dependencies) error {
	message, err := deps.Prompt(ctx)
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		return err
	}
	return runLog(ctx, cmd, deps, message)
}

func runShowToday(ctx context.Context, cmd *cobra.Command, deps Dependencies) error {
	reader := logbook.NewReader(deps.Manager, deps.Logger)
	days, err := reader.History(ctx, deps.Now(), 1)
	if err != nil {
		return err
	}

	p := newPrinter(cmd.OutOrStdout())
	if len(days) == 0 {
		p.notice("No logs for today.")
		return nil
	}
	p.day(days[0], "Log for ")
	return nil
}

func runHistory(ctx context.Context, cmd *cobra.Command, deps Dependencies, n int) error {
	reader := logbook.NewReader(deps.Manager, deps.Logger)
	days, err := reader.History(ctx, deps.Now(), n)
	if err != nil {
		if errors.Is(err, logbook.ErrInvalidDays) {
			return &UsageError{Err: err}
		}
		return err
	}

	p := newPrinter(cmd.OutOrStdout())
	if len(days) == 0 {
		p.notice(fmt.Sprintf("No logs in the last %d %s.", n, plural(n, "day", "days")))
		return nil
	}
	for i, day := range days {
		if i > 0 {
			p.blank()
		}
		p.day(day, "")
	}
	return nil
}

func runSearch(ctx context.Context, cmd *cobra.Command, deps Dependencies, keyword string, caseSensitive bool) error {
	searcher := logbook.NewSearcher(deps.Manager, deps.Logger)
	matches, err := searcher.Search(ctx, keyword, logbook.SearchOptions{CaseSensitive: caseSensitive})
	if err != nil {
		if errors.Is(err, logbook.ErrEmptyKeyword) {
			return &UsageError{Err: err}
		}
		return err
	}

	p := newPrinter(cmd.OutOrStdout())
	if len(matches) == 0 {
		p.notice(fmt.Sprintf("No matches found for '%s'.", keyword))
		return nil
	}
	p.matches(matches)
	return nil
}

func runEdit(ctx context.Context, deps Dependencies) error {
	path, err := deps.Manager.EnsureDayFile(deps.Now())
	if err != nil {
		return err
	}

	deps.Logger.Debug("opening editor", "editor", deps.Config.Editor, "file", path)
	code, err := deps.OpenEditor(ctx, deps.Config.Editor, path)
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
