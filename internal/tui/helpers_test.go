package tui

import (
	"testing"

	"github.com/vvka-141/vshell/internal/files/filesystem"
	"github.com/vvka-141/vshell/internal/shell"
	"github.com/vvka-141/vshell/internal/vfs"
	"github.com/vvka-141/vshell/pkg/vshell"
)

func newInterpreter(t *testing.T, display vshell.Display, files map[string]string) *shell.Interpreter {
	t.Helper()
	mfs := filesystem.NewMemoryFileSystem("/")
	for name, content := range files {
		mfs.AddFile(name, content)
	}
	session := shell.NewSession(vfs.NewIndex(mfs), vfs.NewEmptyDirs())
	return shell.NewInterpreter(shell.Identity{Username: "user", Hostname: "host"}, session, display)
}
