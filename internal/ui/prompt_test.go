package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	next, ok := updated.(Model)
	require.True(t, ok, "Update returned %T", updated)
	return next
}

func press(t *testing.T, m Model, key tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: key})
	next, ok := updated.(Model)
	require.True(t, ok, "Update returned %T", updated)
	return next, cmd
}

func TestPromptSubmitsTypedText(t *testing.T) {
	m := typeText(t, NewModel(defaultLabel), "  reviewing the parser PR ")

	m, cmd := press(t, m, tea.KeyEnter)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Submitted())
	assert.False(t, m.Cancelled())
	assert.Equal(t, "reviewing the parser PR", m.Value())
	assert.Empty(t, m.View())
}

func TestPromptCancelKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := typeText(t, NewModel(defaultLabel), "half a thought")

		m, cmd := press(t, m, key)

		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, m.Cancelled(), "key %v should cancel", key)
		assert.False(t, m.Submitted())
	}
}

func TestPromptViewShowsLabelAndInput(t *testing.T) {
	m := typeText(t, NewModel("Log something:"), "draft")

	view := m.View()
	assert.Contains(t, view, "Log something:")
	assert.Contains(t, view, "draft")
	assert.Contains(t, view, "esc to cancel")
}

func TestPromptEmptySubmission(t *testing.T) {
	m, _ := press(t, NewModel(defaultLabel), tea.KeyEnter)

	assert.True(t, m.Submitted())
	assert.Empty(t, m.Value())
}
