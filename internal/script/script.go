// Package script loads startup command sequences.
package script

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/vvka-141/vshell/internal/files/filesystem"
	"github.com/vvka-141/vshell/pkg/vshell"
)

// MissingResourceError reports a configured startup script that does not exist.
type MissingResourceError struct {
	Path string
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("Startup script '%s' not found.", e.Path)
}

func (e *MissingResourceError) Unwrap() error { return vshell.ErrMissingResource }

// Load reads the script at path and returns its lines in file order with
// surrounding whitespace removed. An empty path yields no commands.
// A missing file returns a *MissingResourceError.
func Load(fsys filesystem.FileSystemProvider, path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingResourceError{Path: path}
		}
		return nil, fmt.Errorf("failed to access startup script: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("startup script is a directory: %s", path)
	}

	content, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read startup script: %w", err)
	}
	return Parse(content)
}

// Parse splits script content into trimmed command lines.
func Parse(content []byte) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading content: %w", err)
	}
	return lines, nil
}
