package vshell

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := session.ReadFileReversed("notes.txt")
//	if errors.Is(err, vshell.ErrDecode) {
//	    // Handle a binary file
//	}
var (
	// ErrInvalidConfig indicates the provided session configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrArchiveOpen indicates the backing archive could not be opened.
	ErrArchiveOpen = errors.New("cannot open archive")

	// ErrNoSuchFileOrDirectory indicates a navigation target does not exist.
	ErrNoSuchFileOrDirectory = errors.New("no such file or directory")

	// ErrFileNotFound indicates a path has no matching file entry in the archive.
	ErrFileNotFound = errors.New("no such file")

	// ErrDecode indicates file content is not valid UTF-8 text.
	ErrDecode = errors.New("invalid UTF-8 content")

	// ErrMissingResource indicates a configured startup script could not be found.
	ErrMissingResource = errors.New("resource not found")

	// ErrUnknownCommand indicates the command verb is not recognized.
	ErrUnknownCommand = errors.New("command not found")

	// ErrEmptyListing indicates a directory listing produced no entries.
	ErrEmptyListing = errors.New("empty listing")
)

// usagePatterns are message fragments cobra produces for command line misuse.
var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrArchiveOpen):
		return ExitArchiveError
	}

	errStr := err.Error()
	for _, p := range usagePatterns {
		if strings.Contains(errStr, p) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
