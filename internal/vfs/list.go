package vfs

import "sort"

// List returns the sorted, deduplicated names of the immediate children of dir
// visible in idx or empty. ok is false when there are none, which covers both
// a missing directory and an existing one with nothing in it.
func List(dir VirtualPath, idx *Index, empty *EmptyDirs) (names []string, ok bool) {
	seen := make(map[string]struct{})

	if idx != nil {
		for _, e := range idx.entries {
			if name, ok := e.Path.childName(dir); ok {
				seen[name] = struct{}{}
			}
		}
	}
	for _, p := range empty.Paths() {
		if name, ok := p.childName(dir); ok {
			seen[name] = struct{}{}
		}
	}

	if len(seen) == 0 {
		return nil, false
	}

	names = make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, true
}
