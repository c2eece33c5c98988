package vfs

import (
	"fmt"
	"strings"

	"github.com/vvka-141/vshell/pkg/vshell"
)

// Kind tags an index entry.
type Kind int

const (
	// KindFile is a stored file with readable content.
	KindFile Kind = iota
	// KindDirectory is an explicit directory entry (archive name ending in a separator).
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Entry is a single archive entry.
type Entry struct {
	Path VirtualPath
	Kind Kind
	// Name is the raw archive name, used to read the content back.
	Name string
}

// Index is an immutable snapshot of every path stored in an archive.
// Directories implied by deeper paths have no entry of their own.
type Index struct {
	entries []Entry
	byPath  map[string]int
	src     vshell.ArchiveSource
}

// NewIndex snapshots the names of src. Names that normalize to the root are skipped.
// When a name is stored twice the first occurrence wins.
func NewIndex(src vshell.ArchiveSource) *Index {
	names := src.Names()
	idx := &Index{
		entries: make([]Entry, 0, len(names)),
		byPath:  make(map[string]int, len(names)),
		src:     src,
	}

	for _, name := range names {
		p := ParsePath(name)
		if p.IsRoot() {
			continue
		}
		if _, dup := idx.byPath[p.key()]; dup {
			continue
		}
		kind := KindFile
		if strings.HasSuffix(name, vshell.PathSeparator) {
			kind = KindDirectory
		}
		idx.byPath[p.key()] = len(idx.entries)
		idx.entries = append(idx.entries, Entry{Path: p, Kind: kind, Name: name})
	}

	return idx
}

// Len returns the number of entries.
func (idx *Index) Len() int { return len(idx.entries) }

// Lookup returns the entry stored at p.
func (idx *Index) Lookup(p VirtualPath) (Entry, bool) {
	i, ok := idx.byPath[p.key()]
	if !ok {
		return Entry{}, false
	}
	return idx.entries[i], true
}

// HasDescendant reports whether some entry lies strictly below dir.
func (idx *Index) HasDescendant(dir VirtualPath) bool {
	for _, e := range idx.entries {
		if dir.IsStrictPrefixOf(e.Path) {
			return true
		}
	}
	return false
}

// IsDirectory reports whether dir is navigable: an explicit directory entry
// or the parent of at least one entry.
func (idx *Index) IsDirectory(dir VirtualPath) bool {
	if e, ok := idx.Lookup(dir); ok && e.Kind == KindDirectory {
		return true
	}
	return idx.HasDescendant(dir)
}

// ReadFile returns the content of the file entry at p.
// It returns an error wrapping vshell.ErrFileNotFound when p is not a file entry.
func (idx *Index) ReadFile(p VirtualPath) ([]byte, error) {
	e, ok := idx.Lookup(p)
	if !ok || e.Kind != KindFile {
		return nil, fmt.Errorf("%w: %s", vshell.ErrFileNotFound, p)
	}
	content, err := idx.src.ReadFile(e.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", e.Name, err)
	}
	return content, nil
}
