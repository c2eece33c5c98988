package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode of a shell session.
type Mode int

const (
	// ModeNonInteractive reads commands line by line, e.g. from a pipe.
	ModeNonInteractive Mode = iota
	// ModeInteractive runs the full-screen REPL for a human at the terminal.
	ModeInteractive
)

// DetectMode determines whether vshell should run the interactive REPL.
//
// Returns ModeNonInteractive if:
//   - VSHELL_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - stdin or stdout is not a terminal
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv("VSHELL_NON_INTERACTIVE") == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ModeNonInteractive
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
