package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user leaves the prompt with esc or ctrl+c.
var ErrCancelled = errors.New("prompt cancelled")

const defaultLabel = "Enter your log message:"

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// Model owns Bubble Tea state for the single-line entry prompt.
type Model struct {
	input     textinput.Model
	label     string
	submitted bool
	cancelled bool
}

// NewModel returns a focused prompt showing label above the input line.
func NewModel(label string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "what are you doing right now?"
	ti.Focus()

	return Model{
		input: ti,
		label: label,
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles submit and cancel keys and forwards everything else to the input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt. It clears itself once the user is done so the
// confirmation printed afterwards stands alone.
func (m Model) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(m.label))
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render("enter to log, esc to cancel"))
	b.WriteByte('\n')
	return b.String()
}

// Value returns the text typed so far, trimmed.
func (m Model) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Submitted reports whether the user pressed enter.
func (m Model) Submitted() bool {
	return m.submitted
}

// Cancelled reports whether the user abandoned the prompt.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Prompt runs the entry prompt on in/out and returns what the user typed. An
// empty string with a nil error means the user submitted nothing.
func Prompt(ctx context.Context, in io.Reader, out io.Writer) (string, error) {
	program := tea.NewProgram(NewModel(defaultLabel),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("run prompt: %w", err)
	}

	m, ok := final.(Model)
	if !ok || m.Cancelled() {
		return "", ErrCancelled
	}
	return m.Value(), nil
}
