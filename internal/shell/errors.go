package shell

import (
	"fmt"

	"github.com/vvka-141/vshell/pkg/vshell"
)

// NavigationError reports a cd target that does not exist.
// Token is the text the user typed, not the resolved path.
type NavigationError struct {
	Token string
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("cd: no such file or directory: %s", e.Token)
}

func (e *NavigationError) Unwrap() error { return vshell.ErrNoSuchFileOrDirectory }

// FileNotFoundError reports a resolved path with no matching file entry.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("tac: no such file: %s", e.Path)
}

func (e *FileNotFoundError) Unwrap() error { return vshell.ErrFileNotFound }

// DecodeError reports file content that is not valid UTF-8.
type DecodeError struct {
	Token string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("tac: error decoding file %s: invalid UTF-8 content", e.Token)
}

func (e *DecodeError) Unwrap() error { return vshell.ErrDecode }

// ReadError reports any other failure while reading file content.
type ReadError struct {
	Token string
	Err   error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("tac: error reading file %s: %v", e.Token, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
