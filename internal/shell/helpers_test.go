package shell

import (
	"testing"

	"github.com/vvka-141/vshell/internal/files/filesystem"
	"github.com/vvka-141/vshell/internal/vfs"
)

// recordingDisplay keeps every appended block.
type recordingDisplay struct {
	blocks []string
}

func (d *recordingDisplay) Append(text string) {
	d.blocks = append(d.blocks, text)
}

func (d *recordingDisplay) last() string {
	if len(d.blocks) == 0 {
		return ""
	}
	return d.blocks[len(d.blocks)-1]
}

func newTestSession(t *testing.T, files map[string]string) *Session {
	t.Helper()
	mfs := filesystem.NewMemoryFileSystem("/")
	for name, content := range files {
		mfs.AddFile(name, content)
	}
	return NewSession(vfs.NewIndex(mfs), vfs.NewEmptyDirs())
}

func newTestInterpreter(t *testing.T, files map[string]string, opts ...Option) (*Interpreter, *recordingDisplay) {
	t.Helper()
	display := &recordingDisplay{}
	in := NewInterpreter(Identity{Username: "test_user", Hostname: "localhost"}, newTestSession(t, files), display, opts...)
	return in, display
}
