package vshell

// ArchiveSource supplies the stored names of a backing archive and read access
// to their content. Names ending in PathSeparator are explicit directory entries.
type ArchiveSource interface {
	// Names returns every name stored in the archive.
	Names() []string

	// ReadFile returns the full content stored under name.
	ReadFile(name string) ([]byte, error)
}

// Display is the append-only output surface of a shell session.
// Each call appends one block of text; blocks are never edited afterwards.
type Display interface {
	Append(text string)
}
