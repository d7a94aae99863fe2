package filetype

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// SyntaxReport is the outcome of parsing a document.
type SyntaxReport struct {
	// Checked is false when the type has no grammar.
	Checked   bool
	HasErrors bool
}

// CheckSyntax parses src with the grammar of the named type.
func (r *Registry) CheckSyntax(ctx context.Context, typeName string, src []byte) (SyntaxReport, error) {
	t := r.ByName(typeName)
	if t == nil || t.TreeSitterLang == nil {
		return SyntaxReport{}, nil
	}
	root, err := sitter.ParseCtx(ctx, src, t.TreeSitterLang)
	if err != nil {
		return SyntaxReport{}, fmt.Errorf("failed to parse %s source: %w", typeName, err)
	}
	return SyntaxReport{Checked: true, HasErrors: root.HasError()}, nil
}

// Regressed reports whether formatting turned a clean parse into one with
// errors.
func (r *Registry) Regressed(ctx context.Context, typeName string, before, after []byte) (bool, error) {
	pre, err := r.CheckSyntax(ctx, typeName, before)
	if err != nil || !pre.Checked || pre.HasErrors {
		return false, err
	}
	post, err := r.CheckSyntax(ctx, typeName, after)
	if err != nil {
		return false, err
	}
	return post.HasErrors, nil
}
