// Package filesystem provides read-only filesystem providers.
//
// Key interfaces:
//   - FileSystemProvider: ReadFile and Stat over some backing store
//   - FileInfo: File metadata, an alias of fs.FileInfo
//
// Implementations:
//   - OSFileSystem: the host filesystem
//   - MemoryFileSystem: in-memory store for tests
//
// ZipFileSystem is not a FileSystemProvider. It exposes the entries of a zip
// archive as a vshell.ArchiveSource, the same interface MemoryFileSystem
// satisfies, so either can back a virtual filesystem index.
package filesystem
