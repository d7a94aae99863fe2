package app

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/bethropolis/tide-astyle/internal/buffer"
	"github.com/bethropolis/tide-astyle/internal/host"
)

// Result describes one formatted document.
type Result struct {
	Path     string
	TypeName string
	Before   string
	After    string
}

// Changed reports whether formatting altered the text.
func (r Result) Changed() bool { return r.Before != r.After }

// FormatFile opens path, formats it and, with SaveFormatted, writes it back.
// typeName overrides the type derived from the file extension.
func (a *App) FormatFile(ctx context.Context, path, typeName string) (Result, error) {
	doc, err := host.OpenDocument(path, typeName, a.fileTypes)
	if err != nil {
		return Result{}, err
	}
	return a.formatDocument(ctx, doc)
}

// FormatText formats text as a document of typeName without touching disk.
func (a *App) FormatText(ctx context.Context, text, typeName string) (Result, error) {
	doc := host.NewDocument(buffer.NewSliceBufferFromBytes([]byte(text)), typeName)
	return a.formatDocument(ctx, doc)
}

// FormatClipboard formats the clipboard text and writes the result back.
func (a *App) FormatClipboard(ctx context.Context, typeName string) (Result, error) {
	if clipboard.Unsupported {
		return Result{}, fmt.Errorf("clipboard is not supported on this system")
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read clipboard: %w", err)
	}
	res, err := a.FormatText(ctx, text, typeName)
	if err != nil {
		return res, err
	}
	if res.Changed() {
		if err := clipboard.WriteAll(res.After); err != nil {
			return res, fmt.Errorf("failed to write clipboard: %w", err)
		}
	}
	return res, nil
}

func (a *App) formatDocument(ctx context.Context, doc *host.Document) (Result, error) {
	res := Result{
		Path:     doc.Buffer().FilePath(),
		TypeName: doc.TypeName(),
		Before:   doc.Text(),
	}
	a.session.Open(doc)
	defer a.session.Open(nil)

	err := a.astyle.FormatDocument(ctx)
	res.After = doc.Text()
	return res, err
}
