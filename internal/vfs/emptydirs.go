package vfs

import "sort"

// EmptyDirs is the set of directories that exist without any archive entries
// beneath them. It is fixed at construction and only read afterwards.
type EmptyDirs struct {
	paths map[string]VirtualPath
}

// NewEmptyDirs builds a registry from the given paths. The root is ignored.
func NewEmptyDirs(paths ...VirtualPath) *EmptyDirs {
	r := &EmptyDirs{paths: make(map[string]VirtualPath, len(paths))}
	for _, p := range paths {
		if p.IsRoot() {
			continue
		}
		r.paths[p.key()] = p
	}
	return r
}

// Contains reports whether p is registered.
func (r *EmptyDirs) Contains(p VirtualPath) bool {
	if r == nil {
		return false
	}
	_, ok := r.paths[p.key()]
	return ok
}

// Paths returns the registered directories in sorted order.
func (r *EmptyDirs) Paths() []VirtualPath {
	if r == nil {
		return nil
	}
	out := make([]VirtualPath, 0, len(r.paths))
	for _, p := range r.paths {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}
