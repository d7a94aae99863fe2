package host

import (
	"errors"
	"fmt"
	"os"

	"github.com/bethropolis/tide-astyle/internal/buffer"
	"github.com/bethropolis/tide-astyle/internal/filetype"
	"github.com/bethropolis/tide-astyle/internal/types"
)

// Document is an open document: its text, cursor and host type name.
type Document struct {
	buf      buffer.Buffer
	cursor   types.Position
	typeName string
}

// NewDocument wraps buf. An empty typeName becomes filetype.NoneName.
func NewDocument(buf buffer.Buffer, typeName string) *Document {
	if typeName == "" {
		typeName = filetype.NoneName
	}
	return &Document{buf: buf, typeName: typeName}
}

// ErrDocumentNotFound means the file to open does not exist.
var ErrDocumentNotFound = errors.New("file not found")

// OpenDocument loads an existing file at path and resolves its type through
// registry, unless typeName overrides it.
func OpenDocument(path, typeName string, registry *filetype.Registry) (*Document, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("%w: '%s'", ErrDocumentNotFound, path)
	case err != nil:
		return nil, fmt.Errorf("failed to open file '%s': %w", path, err)
	case info.IsDir():
		return nil, fmt.Errorf("'%s' is a directory", path)
	}

	buf := buffer.NewSliceBuffer()
	if err := buf.Load(path); err != nil {
		return nil, err
	}
	if typeName == "" {
		typeName = registry.TypeNameForFile(path)
	}
	return NewDocument(buf, typeName), nil
}

func (d *Document) Buffer() buffer.Buffer  { return d.buf }
func (d *Document) Cursor() types.Position { return d.cursor }
func (d *Document) TypeName() string       { return d.typeName }
func (d *Document) Text() string           { return string(d.buf.Bytes()) }

// SetCursor moves the cursor, clamped to the document's lines.
func (d *Document) SetCursor(pos types.Position) {
	d.cursor = d.clamp(pos)
}

func (d *Document) clamp(pos types.Position) types.Position {
	lineCount := d.buf.LineCount()
	if pos.Line >= lineCount {
		pos.Line = lineCount - 1
	}
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if line, err := d.buf.Line(pos.Line); err == nil {
		if n := len([]rune(string(line))); pos.Col > n {
			pos.Col = n
		}
	}
	return pos
}

// replace swaps the whole text. With preserveLine the cursor keeps its line
// (clamped) and moves to column 0; otherwise it goes to the top.
func (d *Document) replace(text string, preserveLine bool) {
	line := d.cursor.Line
	d.buf.SetBytes([]byte(text))
	if !preserveLine {
		line = 0
	}
	d.cursor = d.clamp(types.Position{Line: line})
}
