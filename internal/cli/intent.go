package cli

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects what a single ij invocation does.
type Mode uint8

const (
	// ModeShowToday prints today's entries.
	ModeShowToday Mode = iota
	// ModeLog appends the positional arguments as one message.
	ModeLog
	// ModeLogPiped appends everything read from stdin as one message.
	ModeLogPiped
	// ModeInteractive prompts for a message, then appends it.
	ModeInteractive
	// ModeSearch scans all days for a keyword.
	ModeSearch
	// ModeEdit opens today's file in the configured editor.
	ModeEdit
	// ModeHistory prints the last Days days.
	ModeHistory
)

func (m Mode) String() string {
	switch m {
	case ModeShowToday:
		return "show-today"
	case ModeLog:
		return "log"
	case ModeLogPiped:
		return "log-piped"
	case ModeInteractive:
		return "interactive"
	case ModeSearch:
		return "search"
	case ModeEdit:
		return "edit"
	case ModeHistory:
		return "history"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Intent is the parsed form of the command line. Only the fields relevant to
// Mode are set.
type Intent struct {
	Mode          Mode
	Message       string
	Keyword       string
	CaseSensitive bool
	Days          int
}

// Invocation is the raw command line after flag parsing.
type Invocation struct {
	Args          []string
	Interactive   bool
	Edit          bool
	Search        string
	SearchSet     bool
	Days          int
	DaysSet       bool
	CaseSensitive bool
	StdinPiped    bool
}

// UsageError reports a malformed command line. Nothing has been written when
// one is returned.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func usagef(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// ExitError carries a child process exit status, such as the editor's, out to main.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exited with status %d", e.Code)
}

// ParseIntent turns an Invocation into exactly one Intent, rejecting
// conflicting mode flags.
func ParseIntent(inv Invocation) (Intent, error) {
	var selected []string
	if inv.Interactive {
		selected = append(selected, "-i")
	}
	if inv.SearchSet {
		selected = append(selected, "-s")
	}
	if inv.Edit {
		selected = append(selected, "-e")
	}
	if inv.DaysSet {
		selected = append(selected, "-l")
	}

	if len(selected) > 1 {
		return Intent{}, usagef("flags %s cannot be combined", strings.Join(selected, ", "))
	}
	if len(selected) == 1 && len(inv.Args) > 0 {
		return Intent{}, usagef("%s does not take a message", selected[0])
	}
	if inv.CaseSensitive && !inv.SearchSet {
		return Intent{}, usagef("--case-sensitive requires -s")
	}

	switch {
	case inv.Interactive:
		return Intent{Mode: ModeInteractive}, nil
	case inv.Edit:
		return Intent{Mode: ModeEdit}, nil
	case inv.SearchSet:
		if strings.TrimSpace(inv.Search) == "" {
			return Intent{}, usagef("-s requires a non-empty keyword")
		}
		return Intent{Mode: ModeSearch, Keyword: inv.Search, CaseSensitive: inv.CaseSensitive}, nil
	case inv.DaysSet:
		if inv.Days < 1 {
			return Intent{}, usagef("-l must be at least 1, got %d", inv.Days)
		}
		return Intent{Mode: ModeHistory, Days: inv.Days}, nil
	case len(inv.Args) > 0:
		return Intent{Mode: ModeLog, Message: strings.Join(inv.Args, " ")}, nil
	case inv.StdinPiped:
		return Intent{Mode: ModeLogPiped}, nil
	default:
		return Intent{Mode: ModeShowToday}, nil
	}
}

// isUsageError reports whether err should be answered with the usage text.
func isUsageError(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}
