// Package vfs models the read-only virtual filesystem implied by an archive.
//
// Paths are typed VirtualPath values (ordered segment sequences rooted at the
// archive's top level) rather than strings, so prefix checks are structural and
// "dir1" never matches "dir10".
//
// Components:
//   - VirtualPath / Resolve: path normalization and resolution against a cwd
//   - Index: immutable snapshot of every archive entry
//   - EmptyDirs: directories that exist without any archive entries beneath them
//   - List: sorted, deduplicated immediate children of a directory
package vfs
