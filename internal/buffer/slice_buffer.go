// internal/buffer/slice_buffer.go
package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

// SliceBuffer stores a document as a slice of lines. Joining the lines with
// '\n' reproduces the loaded content byte for byte, including a trailing
// newline (which shows up as a final empty line).
type SliceBuffer struct {
	lines    [][]byte
	filePath string
	modified bool
}

// NewSliceBuffer creates an empty SliceBuffer.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		lines: [][]byte{{}},
	}
}

// NewSliceBufferFromBytes creates an unnamed buffer holding content.
func NewSliceBufferFromBytes(content []byte) *SliceBuffer {
	sb := NewSliceBuffer()
	sb.setLines(content)
	return sb
}

// Load reads a file into the buffer. Replaces existing content.
// A missing file yields an empty buffer bound to filePath.
func (sb *SliceBuffer) Load(filePath string) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sb.lines = [][]byte{{}}
			sb.filePath = filePath
			sb.modified = false
			return nil
		}
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	sb.setLines(content)
	sb.filePath = filePath
	sb.modified = false
	return nil
}

func (sb *SliceBuffer) setLines(content []byte) {
	parts := bytes.Split(content, []byte("\n"))
	lines := make([][]byte, len(parts))
	for i, part := range parts {
		lines[i] = bytes.Clone(part)
		if lines[i] == nil {
			lines[i] = []byte{}
		}
	}
	sb.lines = lines
}

// SetBytes replaces the whole content and marks the buffer modified.
func (sb *SliceBuffer) SetBytes(content []byte) {
	sb.setLines(content)
	sb.modified = true
}

// Lines returns the buffer's lines without their separators.
func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

// LineCount returns the number of lines.
func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

// Line returns the line at index.
func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// Bytes returns the content with lines joined by '\n'.
func (sb *SliceBuffer) Bytes() []byte {
	return bytes.Join(sb.lines, []byte("\n"))
}

// Save writes the buffer content to filePath, or to the stored path if
// filePath is empty.
func (sb *SliceBuffer) Save(filePath string) error {
	path := sb.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}

	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, sb.Bytes(), perm); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	sb.filePath = path
	sb.modified = false
	return nil
}

// IsModified returns true if the buffer has unsaved changes.
func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}

// FilePath returns the path the buffer was loaded from or saved to.
func (sb *SliceBuffer) FilePath() string {
	return sb.filePath
}

// SetFilePath binds the buffer to a path without touching its content.
func (sb *SliceBuffer) SetFilePath(filePath string) {
	sb.filePath = filePath
}

// Ensure SliceBuffer satisfies the Buffer interface
var _ Buffer = (*SliceBuffer)(nil)
