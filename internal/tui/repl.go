package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/vshell/internal/shell"
)

// replModel is the bubbletea model of the interactive shell. Each submitted
// line runs through the interpreter; the resulting blocks are printed above
// the input with tea.Println, so history is append-only.
type replModel struct {
	interp   *shell.Interpreter
	buffer   *BufferDisplay
	input    textinput.Model
	keys     KeyMap
	quitting bool
}

// NewREPLModel creates the model. interp must write to buffer.
func NewREPLModel(interp *shell.Interpreter, buffer *BufferDisplay) tea.Model {
	ti := textinput.New()
	ti.CharLimit = 1024
	ti.Focus()

	m := replModel{
		interp: interp,
		buffer: buffer,
		input:  ti,
		keys:   DefaultKeyMap(),
	}
	m.input.Prompt = PromptStyle.Render(interp.Prompt())
	return m
}

// Init implements tea.Model.
func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m replModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	res := m.interp.Execute(line)
	printed := tea.Println(m.buffer.Flush())
	m.input.Prompt = PromptStyle.Render(m.interp.Prompt())

	if res.Exit {
		m.quitting = true
		return m, tea.Sequence(printed, tea.Quit)
	}
	return m, printed
}

// View implements tea.Model.
func (m replModel) View() string {
	if m.quitting {
		return ""
	}
	return m.input.View() + "\n" + HelpStyle.Render(m.keys.HelpText())
}

// RunREPL runs the interactive shell until exit or ctrl+d.
func RunREPL(interp *shell.Interpreter, buffer *BufferDisplay, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(NewREPLModel(interp, buffer), tea.WithInput(in), tea.WithOutput(out))
	_, err := p.Run()
	return err
}
