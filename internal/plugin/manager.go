// internal/plugin/manager.go
package plugin

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/bethropolis/tide-astyle/internal/logger"
)

// Manager handles the registration, initialization, and lifecycle of plugins.
type Manager struct {
	mu          sync.RWMutex
	plugins     map[string]Plugin
	order       []string
	initialized map[string]bool
}

// NewManager creates a new plugin manager.
func NewManager() *Manager {
	return &Manager{
		plugins:     make(map[string]Plugin),
		initialized: make(map[string]bool),
	}
}

// Register adds a plugin instance to the manager.
// This should be called before InitializePlugins.
func (m *Manager) Register(plugin Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := plugin.Name()
	if name == "" {
		return fmt.Errorf("plugin registration failed: plugin name cannot be empty")
	}
	if _, exists := m.plugins[name]; exists {
		return fmt.Errorf("plugin registration failed: plugin named '%s' already registered", name)
	}

	m.plugins[name] = plugin
	m.order = append(m.order, name)
	logger.Debugf("Plugin Manager: Registered plugin '%s'", name)
	return nil
}

// InitializePlugins calls Initialize on every registered plugin in
// registration order. A failing plugin is logged and skipped; the joined
// errors are returned.
func (m *Manager) InitializePlugins(api EditorAPI) error {
	m.mu.RLock()
	pluginsToInit := make([]Plugin, 0, len(m.order))
	for _, name := range m.order {
		pluginsToInit = append(pluginsToInit, m.plugins[name])
	}
	m.mu.RUnlock()

	logger.Debugf("Plugin Manager: Initializing %d plugins...", len(pluginsToInit))
	var errs []error
	for _, plugin := range pluginsToInit {
		if err := plugin.Initialize(api); err != nil {
			logger.Errorf("Plugin Manager: ERROR initializing plugin '%s': %v", plugin.Name(), err)
			errs = append(errs, fmt.Errorf("plugin %s: %w", plugin.Name(), err))
			continue
		}
		m.mu.Lock()
		m.initialized[plugin.Name()] = true
		m.mu.Unlock()
		logger.Debugf("Plugin Manager: Successfully initialized plugin '%s'", plugin.Name())
	}
	return errors.Join(errs...)
}

// ShutdownPlugins calls Shutdown on initialized plugins in reverse order.
func (m *Manager) ShutdownPlugins() {
	m.mu.Lock()
	var toShutdown []Plugin
	for i := len(m.order) - 1; i >= 0; i-- {
		name := m.order[i]
		if m.initialized[name] {
			toShutdown = append(toShutdown, m.plugins[name])
			delete(m.initialized, name)
		}
	}
	m.mu.Unlock()

	for _, plugin := range toShutdown {
		logger.Debugf("Plugin Manager: Shutting down plugin '%s'...", plugin.Name())
		if err := plugin.Shutdown(); err != nil {
			logger.Errorf("Plugin Manager: ERROR shutting down plugin '%s': %v", plugin.Name(), err)
		}
	}
}

// GetPlugin returns a registered plugin by name.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, exists := m.plugins[name]
	return p, exists
}

// Infos returns metadata for every plugin implementing Describer, sorted by name.
func (m *Manager) Infos() []Info {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var infos []Info
	for _, p := range m.plugins {
		if d, ok := p.(Describer); ok {
			infos = append(infos, d.Info())
		}
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}
