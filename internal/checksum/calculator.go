package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
)

// Calculator is an interface for computing archive checksums.
type Calculator interface {
	// CalculateReader computes a checksum of everything read from r.
	CalculateReader(r io.Reader) (string, error)

	// CalculateNames computes a checksum of a set of entry names.
	// The result does not depend on the order of names.
	CalculateNames(names []string) string
}

// SHA256 implements checksum calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
// Using value semantics (pass by value) eliminates heap allocations.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
// Returns by value to avoid heap allocation (SHA256 is a zero-size type).
func New() SHA256 {
	return SHA256{}
}

// CalculateReader streams r through SHA-256.
func (c SHA256) CalculateReader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to hash content: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// CalculateNames computes SHA-256 over the sorted names, each newline-terminated.
func (c SHA256) CalculateNames(names []string) string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	h := sha256.New()
	for _, name := range sorted {
		io.WriteString(h, name)
		io.WriteString(h, "\n")
	}
	return hex.EncodeToString(h.Sum(nil))
}
