package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeLine(t *testing.T, m tea.Model, line string) (tea.Model, tea.Cmd) {
	t.Helper()
	rm, ok := m.(replModel)
	require.True(t, ok)
	rm.input.SetValue(line)
	return rm.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestREPL_SubmitRunsCommand(t *testing.T) {
	buffer := &BufferDisplay{}
	interp := newInterpreter(t, buffer, map[string]string{"dir1/file3.txt": "x"})
	m := NewREPLModel(interp, buffer)

	m, cmd := typeLine(t, m, "cd dir1")
	require.NotNil(t, cmd)

	rm := m.(replModel)
	assert.Equal(t, "", rm.input.Value(), "input is cleared after submit")
	assert.Equal(t, 0, buffer.Len(), "output was flushed to the print command")
	assert.Contains(t, rm.input.Prompt, "user@host:/dir1$ ")
	assert.False(t, rm.quitting)
	assert.Contains(t, rm.View(), "user@host:/dir1$ ")
}

func TestREPL_ExitQuits(t *testing.T) {
	buffer := &BufferDisplay{}
	interp := newInterpreter(t, buffer, nil)
	m := NewREPLModel(interp, buffer)

	m, cmd := typeLine(t, m, "exit")
	require.NotNil(t, cmd)

	rm := m.(replModel)
	assert.True(t, rm.quitting)
	assert.Equal(t, "", rm.View())
}

func TestREPL_CtrlDQuits(t *testing.T) {
	buffer := &BufferDisplay{}
	m := NewREPLModel(newInterpreter(t, buffer, nil), buffer)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, m.(replModel).quitting)
}

func TestREPL_TypingUpdatesInput(t *testing.T) {
	buffer := &BufferDisplay{}
	m := NewREPLModel(newInterpreter(t, buffer, nil), buffer)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ls")})
	assert.Equal(t, "ls", m.(replModel).input.Value())
	assert.Equal(t, 0, buffer.Len(), "nothing runs before enter")
}
