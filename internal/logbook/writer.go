package logbook

import (
	"context"
	"fmt"
	"time"

	"github.com/faizmokh/ij/internal/files"
)

// Writer appends entries to the current day's file. It never rewrites
// existing content.
type Writer struct {
	manager *files.Manager
	now     Clock
}

// NewWriter wires a writer to the shared files.Manager. A nil clock means time.Now.
func NewWriter(manager *files.Manager, now Clock) *Writer {
	if now == nil {
		now = time.Now
	}
	return &Writer{manager: manager, now: now}
}

// Append stamps message with the current time and appends it as one line to
// today's file, creating the directory and file as needed. A message that is
// blank after trimming returns ErrEmptyMessage without touching the disk.
func (w *Writer) Append(ctx context.Context, message string) (Entry, error) {
	if w == nil || w.manager == nil {
		return Entry{}, fmt.Errorf("writer not initialized with file manager")
	}
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}

	text := normalizeMessage(message)
	if text == "" {
		return Entry{}, ErrEmptyMessage
	}

	now := w.now()
	entry := Entry{
		Time: time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), 0, 0, now.Location()),
		Text: text,
	}

	if err := w.manager.EnsureDir(); err != nil {
		return Entry{}, err
	}

	file, err := w.manager.OpenAppend(now)
	if err != nil {
		return Entry{}, err
	}

	// One write per entry so concurrent appenders interleave by whole lines.
	if _, err := file.WriteString(FormatEntry(entry) + "\n"); err != nil {
		file.Close()
		return Entry{}, fmt.Errorf("append entry: %w", err)
	}
	if err := file.Close(); err != nil {
		return Entry{}, fmt.Errorf("close day file: %w", err)
	}
	return entry, nil
}
