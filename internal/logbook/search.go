package logbook

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/faizmokh/ij/internal/files"
	"github.com/faizmokh/ij/internal/logging"
)

// SearchOptions tunes keyword matching.
type SearchOptions struct {
	CaseSensitive bool
}

// Searcher scans every day file in the log directory for a keyword.
type Searcher struct {
	manager *files.Manager
	reader  *Reader
	logger  *slog.Logger
}

// NewSearcher wires a searcher to the shared files.Manager. A nil logger discards warnings.
func NewSearcher(manager *files.Manager, logger *slog.Logger) *Searcher {
	return &Searcher{
		manager: manager,
		reader:  NewReader(manager, logger),
		logger:  logging.Component(logger, "search"),
	}
}

// Search returns every line containing keyword, oldest day first and in file
// order within a day. The keyword is matched as given, surrounding spaces
// included; only an all-blank keyword is rejected. Matching ignores case unless opts.CaseSensitive is set.
// Files that cannot be read are logged and skipped; no matches is an empty
// result, not an error.
func (s *Searcher) Search(ctx context.Context, keyword string, opts SearchOptions) ([]Match, error) {
	if s == nil || s.manager == nil {
		return nil, errors.New("searcher not initialized with file manager")
	}

	if strings.TrimSpace(keyword) == "" {
		return nil, ErrEmptyKeyword
	}
	needle := keyword
	if !opts.CaseSensitive {
		needle = strings.ToLower(needle)
	}

	days, err := s.manager.DayFiles()
	if err != nil {
		return nil, err
	}
	s.logger.Debug("scanning day files", "count", len(days), "dir", s.manager.BasePath())

	var matches []Match
	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		lines, err := s.reader.Lines(day.Path)
		if err != nil {
			s.logger.Warn("skip unreadable day file", "file", day.Name, "error", err)
			continue
		}

		for i, line := range lines {
			haystack := line
			if !opts.CaseSensitive {
				haystack = strings.ToLower(haystack)
			}
			if !strings.Contains(haystack, needle) {
				continue
			}
			matches = append(matches, Match{
				Date:   day.Date,
				File:   day.Name,
				LineNo: i + 1,
				Line:   line,
			})
		}
	}
	return matches, nil
}
