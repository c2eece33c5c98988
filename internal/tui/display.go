package tui

import (
	"fmt"
	"io"
	"strings"
)

// WriterDisplay appends each block to w followed by a newline.
type WriterDisplay struct {
	w io.Writer
}

// NewWriterDisplay creates a display over w.
func NewWriterDisplay(w io.Writer) *WriterDisplay {
	return &WriterDisplay{w: w}
}

// Append implements vshell.Display.
func (d *WriterDisplay) Append(text string) {
	fmt.Fprintln(d.w, text)
}

// BufferDisplay collects blocks until they are flushed.
type BufferDisplay struct {
	blocks []string
}

// Append implements vshell.Display.
func (d *BufferDisplay) Append(text string) {
	d.blocks = append(d.blocks, text)
}

// Flush returns the collected blocks joined by newlines and empties the buffer.
func (d *BufferDisplay) Flush() string {
	out := strings.Join(d.blocks, "\n")
	d.blocks = d.blocks[:0]
	return out
}

// Len returns the number of collected blocks.
func (d *BufferDisplay) Len() int { return len(d.blocks) }
