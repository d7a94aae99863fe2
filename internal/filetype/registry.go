// Package filetype maps file names to the document type names the host
// reports ("C", "C++", "Java", ...).
package filetype

import (
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/bethropolis/tide-astyle/internal/logger"
)

// NoneName is the type name of documents no registered type claims.
const NoneName = "None"

// Type is a document type known to the host.
type Type struct {
	// Name is the host's type name, matched case-sensitively by the formatter.
	Name string

	// Extensions maps file extensions to this type.
	Extensions []string

	// TreeSitterLang is the grammar used by CheckSyntax; nil if none.
	TreeSitterLang *sitter.Language
}

// Registry maps extensions and names to types.
type Registry struct {
	mu        sync.RWMutex
	types     []*Type
	extToType map[string]*Type
	byName    map[string]*Type
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		extToType: make(map[string]*Type),
		byName:    make(map[string]*Type),
	}
}

// Register adds a type. Later registrations win extension conflicts.
func (r *Registry) Register(t *Type) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.types = append(r.types, t)
	r.byName[t.Name] = t
	for _, ext := range t.Extensions {
		lowerExt := strings.ToLower(ext)
		if existing, ok := r.extToType[lowerExt]; ok {
			logger.Warnf("Extension %s already registered to %s, overriding with %s", lowerExt, existing.Name, t.Name)
		}
		r.extToType[lowerExt] = t
	}
	logger.DebugTagf("filetype", "Registered type %s with extensions %v", t.Name, t.Extensions)
}

// ForFile returns the type for a file path, or nil.
func (r *Registry) ForFile(filePath string) *Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.extToType[strings.ToLower(filepath.Ext(filePath))]
}

// ByName returns the type with the given name, or nil.
func (r *Registry) ByName(name string) *Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[name]
}

// TypeNameForFile returns the type name for a file path, NoneName if unknown.
func (r *Registry) TypeNameForFile(filePath string) string {
	if t := r.ForFile(filePath); t != nil {
		return t.Name
	}
	return NoneName
}

// All returns every registered type in registration order.
func (r *Registry) All() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Type, len(r.types))
	copy(out, r.types)
	return out
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the registry holding the built-in types.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		RegisterBuiltins(defaultRegistry)
	})
	return defaultRegistry
}
