package filesystem

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
)

// ZipFileSystem exposes the entries of a zip archive. The archive is opened
// once and stays open until Close; it is never written.
type ZipFileSystem struct {
	path   string
	reader *zip.ReadCloser
	byName map[string]*zip.File
	names  []string
}

// OpenZip opens the archive at archivePath.
func OpenZip(archivePath string) (*ZipFileSystem, error) {
	rc, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", archivePath, err)
	}

	z := &ZipFileSystem{
		path:   archivePath,
		reader: rc,
		byName: make(map[string]*zip.File, len(rc.File)),
		names:  make([]string, 0, len(rc.File)),
	}
	for _, f := range rc.File {
		if _, dup := z.byName[f.Name]; dup {
			continue
		}
		z.byName[f.Name] = f
		z.names = append(z.names, f.Name)
	}
	return z, nil
}

// Path returns the location of the archive on disk.
func (z *ZipFileSystem) Path() string { return z.path }

// Names implements vshell.ArchiveSource. Names are returned in archive order.
func (z *ZipFileSystem) Names() []string {
	out := make([]string, len(z.names))
	copy(out, z.names)
	return out
}

// ReadFile implements vshell.ArchiveSource. name is an archive name as
// returned by Names.
func (z *ZipFileSystem) ReadFile(name string) ([]byte, error) {
	f, ok := z.byName[name]
	if !ok || f.FileInfo().IsDir() {
		return nil, fmt.Errorf("file not found in archive: %s: %w", name, fs.ErrNotExist)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return content, nil
}

// Close releases the archive handle.
func (z *ZipFileSystem) Close() error {
	return z.reader.Close()
}
