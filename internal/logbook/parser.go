package logbook

import (
	"regexp"
	"strings"
	"time"
)

// TimeLayout is the per-entry timestamp format.
const TimeLayout = "15:04"

// entryPattern also accepts a leading "- " so bullet-style journals still parse.
var entryPattern = regexp.MustCompile(`^(?:- )?(\d{2}:\d{2}) (.*)$`)

// FormatEntry renders an entry as it is stored on disk, without the newline.
func FormatEntry(entry Entry) string {
	var builder strings.Builder
	builder.Grow(len(TimeLayout) + 1 + len(entry.Text))
	builder.WriteString(entry.Time.Format(TimeLayout))
	builder.WriteByte(' ')
	builder.WriteString(entry.Text)
	return builder.String()
}

// ParseEntry parses a stored line back into an Entry dated on date. Lines that
// are not entries (blank lines, headings, notes added in an editor) report false.
func ParseEntry(line string, date time.Time) (Entry, bool) {
	matches := entryPattern.FindStringSubmatch(strings.TrimRight(line, "\r"))
	if matches == nil {
		return Entry{}, false
	}

	parsedTime, err := time.Parse(TimeLayout, matches[1])
	if err != nil {
		return Entry{}, false
	}

	loc := date.Location()
	if loc == nil {
		loc = time.Local
	}
	return Entry{
		Time: time.Date(date.Year(), date.Month(), date.Day(), parsedTime.Hour(), parsedTime.Minute(), 0, 0, loc),
		Text: matches[2],
	}, true
}

// normalizeMessage folds line breaks so one message always occupies one line.
func normalizeMessage(message string) string {
	message = strings.ReplaceAll(message, "\r\n", "\n")
	message = strings.ReplaceAll(message, "\r", "\n")
	message = strings.TrimSpace(message)
	return strings.ReplaceAll(message, "\n", " ")
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
