package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryEntry is a stored file or directory.
type memoryEntry struct {
	relPath string
	content []byte
	info    *memoryFileInfo
	// explicit is false for parent directories created implicitly by AddFile.
	explicit bool
}

// MemoryFileSystem implements FileSystemProvider and vshell.ArchiveSource in memory.
// Only entries added with AddFile, AddFileBytes or AddDir are reported by Names,
// the same way a zip archive lists only what was stored in it.
type MemoryFileSystem struct {
	entries map[string]*memoryEntry // absolute path -> entry
	order   []string                // absolute paths of explicit entries, insertion order
	root    string
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.entries[root] = &memoryEntry{
		relPath: ".",
		info: &memoryFileInfo{
			name:    path.Base(root),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
	return mfs
}

// AddFile adds a text file.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileBytes(filePath, []byte(content))
}

// AddFileBytes adds a file with arbitrary content.
func (mfs *MemoryFileSystem) AddFileBytes(filePath string, content []byte) {
	absPath := mfs.abs(filePath)
	mfs.put(absPath, &memoryEntry{
		relPath: mfs.rel(absPath),
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
		explicit: true,
	})
	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an explicit directory entry, reported by Names with a trailing separator.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.abs(dirPath)
	mfs.put(absPath, newDirEntry(absPath, mfs.rel(absPath), true))
	mfs.ensureDirectoriesExist(absPath)
}

func (mfs *MemoryFileSystem) put(absPath string, e *memoryEntry) {
	if prev, ok := mfs.entries[absPath]; !ok || !prev.explicit {
		mfs.order = append(mfs.order, absPath)
	}
	mfs.entries[absPath] = e
}

func newDirEntry(absPath, relPath string, explicit bool) *memoryEntry {
	return &memoryEntry{
		relPath: relPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
		explicit: explicit,
	}
}

// ensureDirectoriesExist creates implicit entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}
	if _, exists := mfs.entries[dir]; exists {
		return
	}
	mfs.entries[dir] = newDirEntry(dir, mfs.rel(dir), false)
	mfs.ensureDirectoriesExist(dir)
}

// abs maps a path onto the virtual filesystem.
func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Join(mfs.root, p)
}

func (mfs *MemoryFileSystem) rel(absPath string) string {
	if mfs.root == "/" {
		return strings.TrimPrefix(absPath, "/")
	}
	return strings.TrimPrefix(absPath, mfs.root+"/")
}

// Names implements vshell.ArchiveSource. Names are relative to the root, in
// insertion order; directories carry a trailing separator.
func (mfs *MemoryFileSystem) Names() []string {
	names := make([]string, 0, len(mfs.order))
	for _, absPath := range mfs.order {
		e := mfs.entries[absPath]
		if e.info.isDir {
			names = append(names, e.relPath+"/")
			continue
		}
		names = append(names, e.relPath)
	}
	return names
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	e, exists := mfs.entries[mfs.abs(filePath)]
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	if e.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return e.content, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	e, exists := mfs.entries[mfs.abs(statPath)]
	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}
	return e.info, nil
}
