// Package checksum fingerprints archives.
//
// Two fingerprints are provided:
//
//   - Content checksum: SHA-256 of the archive bytes (detects any change)
//   - Names checksum: SHA-256 of the sorted entry names (identifies the
//     directory layout regardless of storage order or content)
//
// # Example Usage
//
//	calculator := checksum.New()
//	sum, err := calculator.CalculateReader(archiveFile)
//	layout := calculator.CalculateNames(archive.Names())
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
