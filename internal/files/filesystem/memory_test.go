package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")

	expectedContent := "Line 1\nLine 2"
	mfs.AddFile("notes.txt", expectedContent)

	content, err := mfs.ReadFile("/test/project/notes.txt")
	require.NoError(t, err)
	require.Equal(t, expectedContent, string(content))

	content, err = mfs.ReadFile("notes.txt")
	require.NoError(t, err, "relative paths resolve against the root")
	require.Equal(t, expectedContent, string(content))
}

func TestMemoryFileSystem_ReadFile_Missing(t *testing.T) {
	mfs := NewMemoryFileSystem("/")

	_, err := mfs.ReadFile("nope.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_ReadFile_Directory(t *testing.T) {
	mfs := NewMemoryFileSystem("/")
	mfs.AddFile("dir1/file3.txt", "x")

	_, err := mfs.ReadFile("dir1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("sub/file.txt", "hello")

	info, err := mfs.Stat("/test/project/sub/file.txt")
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.Equal(t, "file.txt", info.Name())
	require.Equal(t, int64(5), info.Size())

	info, err = mfs.Stat("sub")
	require.NoError(t, err)
	require.True(t, info.IsDir(), "parent directories are created implicitly")

	info, err = mfs.Stat("/test/project")
	require.NoError(t, err)
	require.True(t, info.IsDir())

	_, err = mfs.Stat("missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_NamesListOnlyExplicitEntries(t *testing.T) {
	mfs := NewMemoryFileSystem("/")
	mfs.AddFile("file1.txt", "a")
	mfs.AddFile("dir1/file3.txt", "b")
	mfs.AddDir("empty")
	mfs.AddDir("dir1")
	mfs.AddFile("file1.txt", "replaced")

	assert.Equal(t, []string{"file1.txt", "dir1/file3.txt", "empty/", "dir1/"}, mfs.Names())

	content, err := mfs.ReadFile("file1.txt")
	require.NoError(t, err)
	assert.Equal(t, "replaced", string(content))
}

func TestMemoryFileSystem_AddFileBytes(t *testing.T) {
	mfs := NewMemoryFileSystem("/")
	mfs.AddFileBytes("bin.dat", []byte{0x80, 0x81, 0x82})

	content, err := mfs.ReadFile("bin.dat")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0x81, 0x82}, content)
}
