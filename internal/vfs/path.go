package vfs

import (
	"slices"
	"strings"

	"github.com/vvka-141/vshell/pkg/vshell"
)

// VirtualPath is an ordered sequence of path segments rooted at the archive's
// top level. No segment is empty, "." or contains a separator. A ".." inside a
// longer token is kept as a literal segment and matches no archive entry.
// The zero value is the root.
type VirtualPath struct {
	segments []string
}

// Root returns the path with zero segments.
func Root() VirtualPath {
	return VirtualPath{}
}

// ParsePath builds a VirtualPath from a separator-delimited string such as an
// archive name. It is equivalent to resolving s against the root.
func ParsePath(s string) VirtualPath {
	return Resolve(Root(), s)
}

// Resolve turns a user-supplied token into a normalized path relative to current.
//
// An empty token or "." returns current unchanged and ".." returns its parent
// (root stays root). Any other token is split on the separator: empty and "."
// segments are dropped and everything else, ".." included, is appended.
// A leading separator carries no meaning; all tokens are relative.
func Resolve(current VirtualPath, token string) VirtualPath {
	switch token {
	case "", ".":
		return current
	case "..":
		return current.Parent()
	}

	segs := slices.Clone(current.segments)
	for _, seg := range strings.Split(token, vshell.PathSeparator) {
		if seg == "" || seg == "." {
			continue
		}
		segs = append(segs, seg)
	}
	return VirtualPath{segments: segs}
}

// IsRoot reports whether p has no segments.
func (p VirtualPath) IsRoot() bool { return len(p.segments) == 0 }

// Parent returns p without its last segment. The parent of the root is the root.
func (p VirtualPath) Parent() VirtualPath {
	if p.IsRoot() {
		return p
	}
	return VirtualPath{segments: slices.Clone(p.segments[:len(p.segments)-1])}
}

// String joins the segments with the separator. The root renders as "".
func (p VirtualPath) String() string {
	return strings.Join(p.segments, vshell.PathSeparator)
}

// Compare orders paths segment by segment.
func (p VirtualPath) Compare(other VirtualPath) int {
	return slices.Compare(p.segments, other.segments)
}

// HasPrefix reports whether every segment of prefix matches the leading
// segments of p. Every path has the root as a prefix.
func (p VirtualPath) HasPrefix(prefix VirtualPath) bool {
	if len(prefix.segments) > len(p.segments) {
		return false
	}
	return slices.Equal(p.segments[:len(prefix.segments)], prefix.segments)
}

// IsStrictPrefixOf reports whether other lies strictly below p: it starts
// with all of p's segments and has at least one more.
func (p VirtualPath) IsStrictPrefixOf(other VirtualPath) bool {
	return len(other.segments) > len(p.segments) && other.HasPrefix(p)
}

// childName returns the first segment of p below dir. ok is false unless dir
// is a strict prefix of p.
func (p VirtualPath) childName(dir VirtualPath) (string, bool) {
	if !dir.IsStrictPrefixOf(p) {
		return "", false
	}
	return p.segments[len(dir.segments)], true
}

// key is a map key for p. Segments never contain the separator, so joining is injective.
func (p VirtualPath) key() string {
	return p.String()
}
