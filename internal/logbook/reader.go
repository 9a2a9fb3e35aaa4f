package logbook

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/faizmokh/ij/internal/files"
	"github.com/faizmokh/ij/internal/logging"
)

// Reader loads day files from the log directory.
type Reader struct {
	manager *files.Manager
	logger  *slog.Logger
}

// NewReader wires a reader using the shared files.Manager. A nil logger discards warnings.
func NewReader(manager *files.Manager, logger *slog.Logger) *Reader {
	return &Reader{
		manager: manager,
		logger:  logging.Component(logger, "reader"),
	}
}

// Lines returns the lines of the file at path in order. A missing file is
// not an error; it simply has no lines.
func (r *Reader) Lines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	// Lines have no length limit; a piped message may be arbitrarily large.
	var lines []string
	br := bufio.NewReader(file)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
}

// Day returns the lines logged on the calendar day of date.
func (r *Reader) Day(ctx context.Context, date time.Time) (Day, error) {
	if r == nil || r.manager == nil {
		return Day{}, errors.New("reader not initialized with file manager")
	}
	if err := ctx.Err(); err != nil {
		return Day{}, err
	}

	lines, err := r.Lines(r.manager.DayPath(date))
	if err != nil {
		return Day{}, err
	}
	return Day{Date: startOfDay(date), Lines: lines}, nil
}

// History returns the days with entries among the last days calendar days
// ending on end (inclusive), oldest first. Days without a file, or with an
// empty one, are omitted. Unreadable days are logged and skipped.
//
// The walk never starts before the oldest day file on disk, so a large window
// costs no more than the journal's actual span.
func (r *Reader) History(ctx context.Context, end time.Time, days int) ([]Day, error) {
	if r == nil || r.manager == nil {
		return nil, errors.New("reader not initialized with file manager")
	}
	if days < 1 {
		return nil, ErrInvalidDays
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	existing, err := r.manager.DayFiles()
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, nil
	}

	end = startOfDay(end)
	start := end.AddDate(0, 0, -(days - 1))
	first := existing[0].Date
	if oldest := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, end.Location()); start.Before(oldest) {
		start = oldest
	}

	var result []Day
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		day, err := r.Day(ctx, date)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			r.logger.Warn("skip unreadable day file",
				"file", files.DayName(date),
				"error", err,
			)
			continue
		}
		if len(day.Lines) == 0 {
			continue
		}
		result = append(result, day)
	}
	return result, nil
}
