package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the REPL.
type KeyMap struct {
	Submit key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+d", "quit"),
		),
	}
}

// HelpText returns a formatted help string.
func (k KeyMap) HelpText() string {
	return k.Submit.Help().Key + " " + k.Submit.Help().Desc + " • " + k.Quit.Help().Key + " " + k.Quit.Help().Desc
}
