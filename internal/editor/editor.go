// Package editor opens a file in the user's editor attached to the terminal.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// ErrNotFound is returned when the editor command cannot be located.
var ErrNotFound = errors.New("editor not found")

// Streams are the terminal handles the editor inherits.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Open runs command with path as its final argument and waits for it to exit.
// command may carry arguments of its own, e.g. "code --wait". The editor's exit
// code is returned; a non-nil error means the editor could not be started.
func Open(ctx context.Context, command, path string, streams Streams) (int, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: empty command", ErrNotFound)
	}

	bin, err := exec.LookPath(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q (set $EDITOR)", ErrNotFound, fields[0])
	}

	// The editor owns the terminal and its own Ctrl+C handling; an interrupt
	// aimed at ij must not kill it and lose unsaved edits.
	args := append(fields[1:], path)
	cmd := exec.CommandContext(context.WithoutCancel(ctx), bin, args...)
	cmd.Stdin = streams.In
	cmd.Stdout = streams.Out
	cmd.Stderr = streams.Err

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("run editor: %w", err)
	}
	return 0, nil
}
