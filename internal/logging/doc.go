// Package logging provides concrete implementations of the vshell.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Leveled, structured output via charmbracelet/log
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
