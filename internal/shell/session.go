package shell

import (
	"errors"
	"unicode/utf8"

	"github.com/vvka-141/vshell/internal/vfs"
	"github.com/vvka-141/vshell/pkg/vshell"
)

// Outcome describes a successful cd.
type Outcome int

const (
	// OutcomeNoop means the target was empty or "." and nothing changed.
	OutcomeNoop Outcome = iota
	// OutcomeMoved means the session moved to the parent directory.
	OutcomeMoved
	// OutcomeChanged means the session entered a named directory.
	OutcomeChanged
)

// Session is the navigation state of one shell over an archive index.
// The current directory is its only mutable state and only ChangeDirectory
// modifies it. A Session is not safe for concurrent use.
type Session struct {
	index *vfs.Index
	empty *vfs.EmptyDirs
	cwd   vfs.VirtualPath
}

// NewSession creates a session positioned at the root.
func NewSession(index *vfs.Index, empty *vfs.EmptyDirs) *Session {
	if empty == nil {
		empty = vfs.NewEmptyDirs()
	}
	return &Session{index: index, empty: empty, cwd: vfs.Root()}
}

// Cwd returns the current directory.
func (s *Session) Cwd() vfs.VirtualPath { return s.cwd }

// ChangeDirectory moves the session according to token.
// On failure the current directory is unchanged and the error is a *NavigationError.
func (s *Session) ChangeDirectory(token string) (Outcome, error) {
	switch token {
	case "..":
		s.cwd = vfs.Resolve(s.cwd, token)
		return OutcomeMoved, nil
	case "", ".":
		return OutcomeNoop, nil
	}

	candidate := vfs.Resolve(s.cwd, token)
	if !s.isDirectory(candidate) {
		return OutcomeNoop, &NavigationError{Token: token}
	}
	s.cwd = candidate
	return OutcomeChanged, nil
}

func (s *Session) isDirectory(p vfs.VirtualPath) bool {
	if p.IsRoot() {
		return true
	}
	return s.index.IsDirectory(p) || s.empty.Contains(p)
}

// List returns the children of the current directory. ok is false when the
// listing is empty.
func (s *Session) List() (names []string, ok bool) {
	return vfs.List(s.cwd, s.index, s.empty)
}

// ReadFileReversed returns the lines of the file at token, last line first.
func (s *Session) ReadFileReversed(token string) ([]string, error) {
	target := vfs.Resolve(s.cwd, token)

	content, err := s.index.ReadFile(target)
	if err != nil {
		if errors.Is(err, vshell.ErrFileNotFound) {
			return nil, &FileNotFoundError{Path: target.String()}
		}
		return nil, &ReadError{Token: token, Err: err}
	}
	if !utf8.Valid(content) {
		return nil, &DecodeError{Token: token}
	}

	lines := splitLines(string(content))
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines, nil
}

// splitLines splits at every line boundary: "\n", "\r\n", "\r", "\v", "\f",
// the file, group and record separators (U+001C to U+001E), U+0085, U+2028 and
// U+2029. A boundary at the end of the text does not start another line.
func splitLines(text string) []string {
	lines := []string{}
	start := 0
	for i, r := range text {
		if !isLineBoundary(r) || i < start {
			continue
		}
		lines = append(lines, text[start:i])
		start = i + utf8.RuneLen(r)
		if r == '\r' && start < len(text) && text[start] == '\n' {
			start++
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
