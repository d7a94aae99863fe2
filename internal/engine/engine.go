// Package engine is the boundary to the external AStyle formatting engine.
//
// The engine works through two callbacks: it reports problems through an
// ErrorHandler and obtains its output buffer from an Allocator. A call
// returns a slice handed out by the allocator, or nil on failure. Every
// allocation belongs to the Arena that served it; the caller claims the
// returned one as a *Buffer and the arena releases the rest.
package engine

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// ErrorHandler receives engine diagnostics. Being called does not by itself
// mean the format call failed.
type ErrorHandler func(code int, message string)

// Allocator returns a buffer of exactly size bytes, or nil.
type Allocator func(size int) []byte

// Engine formats source text according to an option string.
type Engine interface {
	Format(source, options string, onError ErrorHandler, alloc Allocator) []byte
	Version() string
}

// Config selects and configures a backend.
type Config struct {
	Backend string
	Binary  string
	Timeout time.Duration
}

// Constructor builds a backend from cfg.
type Constructor func(cfg Config) (Engine, error)

var (
	backendsMu sync.RWMutex
	backends   = map[string]Constructor{
		"exec": func(cfg Config) (Engine, error) { return NewExec(cfg) },
	}
)

// Register makes a backend available to New under name.
func Register(name string, c Constructor) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends[name] = c
}

// Backends lists the registered backend names.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the backend named by cfg.Backend ("exec" when empty).
func New(cfg Config) (Engine, error) {
	name := cfg.Backend
	if name == "" {
		name = "exec"
	}
	backendsMu.RLock()
	c, ok := backends[name]
	backendsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown engine backend '%s' (available: %v)", name, Backends())
	}
	return c(cfg)
}
