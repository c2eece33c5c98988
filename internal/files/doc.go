// Package files groups the file access layers of vshell.
//
// Sub-packages:
//   - filesystem: provider abstraction with zip, OS and in-memory implementations
//
// The zip provider is the archive-loading collaborator of a shell session; the
// OS provider reads startup scripts and configuration; the in-memory provider
// stands in for both in tests.
package files
