package logbook

import "time"

// Clock reports the current local time. Writers and the CLI take one so tests
// can pin "now".
type Clock func() time.Time

// Entry represents a single timestamped line within a day file.
type Entry struct {
	Time time.Time
	Text string
}

// String renders the entry in its on-disk form, "HH:MM <text>".
func (e Entry) String() string {
	return FormatEntry(e)
}

// Day holds the lines of one day file, in file order.
type Day struct {
	Date  time.Time
	Lines []string
}

// Match is a single search hit.
type Match struct {
	Date   time.Time
	File   string
	LineNo int
	Line   string
}
