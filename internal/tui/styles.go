package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

// Styles for the REPL.
var (
	// PromptStyle renders the user@host:/cwd$ prefix of the input line.
	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	// HelpStyle renders the key hint under the input.
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
