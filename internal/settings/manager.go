package settings

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bethropolis/tide-astyle/internal/i18n"
	"github.com/bethropolis/tide-astyle/internal/logger"
)

// Store owns the single in-memory Settings record.
type Store struct {
	mu       sync.RWMutex
	settings Settings
}

// NewStore creates a store holding initial.
func NewStore(initial Settings) *Store {
	return &Store{settings: initial}
}

// Get returns a copy of the current settings.
func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Set replaces the current settings wholesale.
func (s *Store) Set(settings Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// Update applies fn to the settings under the write lock and returns the result.
func (s *Store) Update(fn func(*Settings)) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.settings)
	return s.settings
}

// Notifier shows one-line notices to the user.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// Manager ties the settings record to its file and reports recoverable
// problems to the user.
type Manager struct {
	path     string
	signal   string
	store    *Store
	catalog  *i18n.Catalog
	notifier Notifier
}

// NewManager creates a manager for the settings file at path, starting
// from defaults derived from the locale signal.
func NewManager(path, localeSignal string, catalog *i18n.Catalog, notifier Notifier) *Manager {
	if catalog == nil {
		catalog = i18n.Default()
	}
	if notifier == nil {
		notifier = NotifierFunc(func(string) {})
	}
	return &Manager{
		path:     path,
		signal:   localeSignal,
		store:    NewStore(Defaults(localeSignal)),
		catalog:  catalog,
		notifier: notifier,
	}
}

// Path returns the settings file path.
func (m *Manager) Path() string { return m.path }

// Store exposes the shared record.
func (m *Manager) Store() *Store { return m.store }

// Settings returns a copy of the current settings.
func (m *Manager) Settings() Settings { return m.store.Get() }

// Text localizes id in the current UI language.
func (m *Manager) Text(id i18n.MessageID) string {
	return m.catalog.Text(m.store.Get().Language, id)
}

// Reset restores the defaults in memory.
func (m *Manager) Reset() Settings {
	defaults := Defaults(m.signal)
	m.store.Set(defaults)
	logger.DebugTagf("settings", "Settings reset to defaults (language %s)", defaults.Language)
	return defaults
}

// Load reads the settings file over the in-memory record. A missing file
// keeps the current values; an unsupported language is corrected and
// reported once. The returned error is nil for every recovered case.
func (m *Manager) Load() error {
	current := m.store.Get()
	loaded, err := Load(m.path, current)

	var invalid *InvalidLocaleError
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		logger.DebugTagf("settings", "No settings file at '%s', keeping defaults", m.path)
		return nil
	case errors.As(err, &invalid):
		// The notice is rendered in the language in effect before the correction.
		m.notifier.Notify(fmt.Sprintf("%s: %s", m.catalog.Text(current.Language, i18n.MsgInvalidLanguage), invalid.Value))
		logger.Warnf("Settings file '%s': %v, using %s", m.path, err, loaded.Language)
	default:
		logger.Errorf("Failed to load settings: %v", err)
		return err
	}

	m.store.Set(loaded)
	logger.Infof("Loaded settings from '%s' (language %s)", m.path, loaded.Language)
	return nil
}

// Save persists the in-memory record. Failures are reported to the user
// and returned.
func (m *Manager) Save() error {
	current := m.store.Get()
	if err := Save(m.path, current); err != nil {
		m.notifier.Notify(fmt.Sprintf("%s: %v", m.catalog.Text(current.Language, i18n.MsgSaveFailed), err))
		logger.Errorf("Failed to save settings: %v", err)
		return err
	}
	logger.DebugTagf("settings", "Saved settings to '%s'", m.path)
	return nil
}

// Apply replaces the record wholesale and persists it.
func (m *Manager) Apply(settings Settings) error {
	if !settings.Language.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLocale, int(settings.Language))
	}
	m.store.Set(settings)
	return m.Save()
}

// Commit stores a new option string and persists it.
func (m *Manager) Commit(optionString string) error {
	m.store.Update(func(s *Settings) { s.OptionString = optionString })
	return m.Save()
}

// CommitLanguage stores a new UI language and persists it.
func (m *Manager) CommitLanguage(locale i18n.Locale) error {
	if !locale.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLocale, int(locale))
	}
	m.store.Update(func(s *Settings) { s.Language = locale })
	return m.Save()
}
