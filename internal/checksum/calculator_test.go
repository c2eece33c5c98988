package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

func TestSHA256Calculator_CalculateReader(t *testing.T) {
	calc := New()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "Empty string",
			content:  "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "abc",
			content:  "abc",
			expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.CalculateReader(strings.NewReader(tt.content))
			if err != nil {
				t.Fatalf("CalculateReader() error = %v", err)
			}
			if result != tt.expected {
				t.Errorf("CalculateReader() = %s, want %s", result, tt.expected)
			}
		})
	}
}

func TestSHA256Calculator_CalculateReader_LargeContent(t *testing.T) {
	content := strings.Repeat("Line 1\nLine 2\n", 1000)

	got, err := New().CalculateReader(strings.NewReader(content))
	if err != nil {
		t.Fatalf("CalculateReader() error = %v", err)
	}
	sum := sha256.Sum256([]byte(content))
	if want := hex.EncodeToString(sum[:]); got != want {
		t.Errorf("CalculateReader() = %s, want %s", got, want)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestSHA256Calculator_CalculateReader_Error(t *testing.T) {
	_, err := New().CalculateReader(failingReader{})
	if err == nil || !strings.Contains(err.Error(), "disk on fire") {
		t.Errorf("CalculateReader() error = %v, want wrapped read error", err)
	}
}

func TestSHA256Calculator_CalculateNames(t *testing.T) {
	calc := New()

	a := calc.CalculateNames([]string{"dir1/", "dir1/file3.txt", "file1.txt"})
	b := calc.CalculateNames([]string{"file1.txt", "dir1/file3.txt", "dir1/"})
	if a != b {
		t.Errorf("CalculateNames() depends on order: %s != %s", a, b)
	}

	c := calc.CalculateNames([]string{"file1.txt", "dir1/file3.txt"})
	if a == c {
		t.Error("CalculateNames() should differ when the name set differs")
	}

	// Joining must not make ["ab"] and ["a", "b"] collide.
	if calc.CalculateNames([]string{"ab"}) == calc.CalculateNames([]string{"a", "b"}) {
		t.Error("CalculateNames() collides across name boundaries")
	}
}

func TestSHA256Calculator_CalculateNames_DoesNotMutateInput(t *testing.T) {
	names := []string{"z", "a"}
	New().CalculateNames(names)
	if names[0] != "z" || names[1] != "a" {
		t.Errorf("CalculateNames() reordered its input: %v", names)
	}
}
