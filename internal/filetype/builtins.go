package filetype

import (
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/smacker/go-tree-sitter/java"
)

// RegisterBuiltins adds the types the formatter distinguishes plus a few
// common ones it passes through without a mode.
func RegisterBuiltins(r *Registry) {
	r.Register(&Type{
		Name:           "C",
		Extensions:     []string{".c", ".h"},
		TreeSitterLang: c.GetLanguage(),
	})
	r.Register(&Type{
		Name:           "C++",
		Extensions:     []string{".cpp", ".cc", ".cxx", ".c++", ".hpp", ".hh", ".hxx", ".h++"},
		TreeSitterLang: cpp.GetLanguage(),
	})
	r.Register(&Type{
		Name:           "Java",
		Extensions:     []string{".java"},
		TreeSitterLang: java.GetLanguage(),
	})
	r.Register(&Type{
		Name:           "C#",
		Extensions:     []string{".cs"},
		TreeSitterLang: csharp.GetLanguage(),
	})

	r.Register(&Type{Name: "Go", Extensions: []string{".go"}})
	r.Register(&Type{Name: "Python", Extensions: []string{".py", ".pyw"}})
	r.Register(&Type{Name: "JavaScript", Extensions: []string{".js", ".mjs", ".cjs"}})
	r.Register(&Type{Name: "Rust", Extensions: []string{".rs"}})
}
