package vfs

import (
	"fmt"
	"sort"
)

// mapArchive is an in-package ArchiveSource double.
type mapArchive map[string][]byte

func (m mapArchive) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m mapArchive) ReadFile(name string) ([]byte, error) {
	content, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("not in archive: %s", name)
	}
	return content, nil
}

func indexOf(names ...string) *Index {
	m := make(mapArchive, len(names))
	for _, n := range names {
		m[n] = []byte("content of " + n)
	}
	return NewIndex(m)
}
