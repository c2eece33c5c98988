package vshell_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/vshell/pkg/vshell"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, vshell.ExitSuccess},
		{"unknown flag", errors.New("unknown flag: --foo"), vshell.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), vshell.ExitUsageError},
		{"required flag", errors.New("required flag(s) \"username\" not set"), vshell.ExitUsageError},
		{"flag needs an argument", errors.New("flag needs an argument: --vfs"), vshell.ExitUsageError},
		{"invalid config", vshell.ErrInvalidConfig, vshell.ExitConfigError},
		{"wrapped invalid config", fmt.Errorf("load: %w", vshell.ErrInvalidConfig), vshell.ExitConfigError},
		{"archive open", fmt.Errorf("%w: fs.zip", vshell.ErrArchiveOpen), vshell.ExitArchiveError},
		{"general error", errors.New("something went wrong"), vshell.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vshell.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
