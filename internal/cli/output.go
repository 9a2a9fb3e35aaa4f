package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/ij/internal/files"
	"github.com/faizmokh/ij/internal/logbook"
)

// printer renders journal output. Styles are bound to the destination writer,
// so anything that is not a terminal receives plain text.
type printer struct {
	out    io.Writer
	header lipgloss.Style
	stamp  lipgloss.Style
	muted  lipgloss.Style
}

func newPrinter(out io.Writer) printer {
	r := lipgloss.NewRenderer(out)
	return printer{
		out:    out,
		header: r.NewStyle().Bold(true),
		stamp:  r.NewStyle().Foreground(lipgloss.Color("6")),
		muted:  r.NewStyle().Faint(true),
	}
}

// day prints "--- <prefix>YYYY-MM-DD ---" followed by the day's lines.
func (p printer) day(day logbook.Day, prefix string) {
	title := fmt.Sprintf("--- %s%s ---", prefix, day.Date.Format(files.DateLayout))
	fmt.Fprintln(p.out, p.header.Render(title))
	for _, line := range day.Lines {
		fmt.Fprintln(p.out, p.line(day, line))
	}
}

// matches prints search hits grouped under a "[YYYY-MM-DD]" header per day.
func (p printer) matches(matches []logbook.Match) {
	current := ""
	for _, m := range matches {
		if m.File != current {
			if current != "" {
				p.blank()
			}
			current = m.File
			fmt.Fprintln(p.out, p.header.Render("["+m.Date.Format(files.DateLayout)+"]"))
		}
		fmt.Fprintf(p.out, "  %s\n", p.line(logbook.Day{Date: m.Date}, m.Line))
	}
}

// line highlights the leading timestamp of entry lines; the text itself is
// never altered.
func (p printer) line(day logbook.Day, line string) string {
	entry, ok := logbook.ParseEntry(line, day.Date)
	if !ok {
		return line
	}
	stamp := entry.Time.Format(logbook.TimeLayout)
	if !strings.HasPrefix(line, stamp) {
		return line
	}
	return p.stamp.Render(stamp) + line[len(stamp):]
}

func (p printer) notice(msg string) {
	fmt.Fprintln(p.out, p.muted.Render(msg))
}

func (p printer) blank() {
	fmt.Fprintln(p.out)
}
