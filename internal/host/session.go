// Package host is the editing session the plugins run against: the active
// document, the command registry, the event bus and user notices.
package host

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bethropolis/tide-astyle/internal/event"
	"github.com/bethropolis/tide-astyle/internal/formatter"
	"github.com/bethropolis/tide-astyle/internal/logger"
	"github.com/bethropolis/tide-astyle/internal/plugin"
	"github.com/bethropolis/tide-astyle/internal/statusbar"
)

// Config holds what a Session needs from its environment.
type Config struct {
	ConfigDir    string
	LocaleSignal string
	StatusBar    *statusbar.StatusBar
	// Notifier shows notices to the user; nil only records them.
	Notifier func(message string)
}

// Session implements plugin.EditorAPI.
type Session struct {
	mu       sync.Mutex
	doc      *Document
	commands map[string]plugin.CommandFunc
	notices  []string

	events    *event.Manager
	plugins   *plugin.Manager
	statusBar *statusbar.StatusBar
	notifier  func(string)

	configDir    string
	localeSignal string
}

var _ plugin.EditorAPI = (*Session)(nil)

// NewSession creates a session without an active document.
func NewSession(cfg Config) *Session {
	sb := cfg.StatusBar
	if sb == nil {
		sb = statusbar.New(statusbar.DefaultConfig())
	}
	return &Session{
		commands:     make(map[string]plugin.CommandFunc),
		events:       event.NewManager(),
		plugins:      plugin.NewManager(),
		statusBar:    sb,
		notifier:     cfg.Notifier,
		configDir:    cfg.ConfigDir,
		localeSignal: cfg.LocaleSignal,
	}
}

// Plugins returns the session's plugin manager.
func (s *Session) Plugins() *plugin.Manager { return s.plugins }

// StatusBar returns the session's status line.
func (s *Session) StatusBar() *statusbar.StatusBar { return s.statusBar }

// Start registers and initializes the given plugins.
func (s *Session) Start(plugins ...plugin.Plugin) error {
	for _, p := range plugins {
		if err := s.plugins.Register(p); err != nil {
			return err
		}
	}
	return s.plugins.InitializePlugins(s)
}

// Close shuts the plugins down.
func (s *Session) Close() {
	s.plugins.ShutdownPlugins()
}

// Open makes doc the active document (nil closes it).
func (s *Session) Open(doc *Document) {
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	if doc == nil {
		s.statusBar.SetFileInfo("", "", false)
		return
	}
	s.statusBar.SetFileInfo(doc.buf.FilePath(), doc.typeName, doc.buf.IsModified())
	s.statusBar.SetCursorInfo(doc.cursor)
	s.events.Dispatch(event.TypeDocumentLoaded, event.DocumentLoadedData{
		FilePath: doc.buf.FilePath(),
		TypeName: doc.typeName,
	})
}

// Document returns the active document, or nil.
func (s *Session) Document() *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// CurrentDocumentText returns the active document's text.
func (s *Session) CurrentDocumentText() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return "", false
	}
	return s.doc.Text(), true
}

// CurrentDocumentTypeName returns the active document's type name.
func (s *Session) CurrentDocumentTypeName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return ""
	}
	return s.doc.typeName
}

// CurrentDocumentPath returns the active document's file path.
func (s *Session) CurrentDocumentPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return ""
	}
	return s.doc.buf.FilePath()
}

// ReplaceDocumentText replaces the active document's whole text.
func (s *Session) ReplaceDocumentText(text string, preserveCursorLine bool) error {
	s.mu.Lock()
	doc := s.doc
	if doc == nil {
		s.mu.Unlock()
		return formatter.ErrNoActiveDocument
	}
	doc.replace(text, preserveCursorLine)
	cursor := doc.cursor
	path, typeName, modified := doc.buf.FilePath(), doc.typeName, doc.buf.IsModified()
	s.mu.Unlock()

	s.statusBar.SetFileInfo(path, typeName, modified)
	s.statusBar.SetCursorInfo(cursor)
	return nil
}

// SaveDocument writes the active document to its file.
func (s *Session) SaveDocument() error {
	s.mu.Lock()
	doc := s.doc
	s.mu.Unlock()
	if doc == nil {
		return formatter.ErrNoActiveDocument
	}
	if err := doc.buf.Save(""); err != nil {
		return err
	}
	s.statusBar.SetFileInfo(doc.buf.FilePath(), doc.typeName, false)
	logger.Debugf("Session: Saved '%s'", doc.buf.FilePath())
	return nil
}

// DispatchEvent sends an event through the session's bus.
func (s *Session) DispatchEvent(eventType event.Type, data interface{}) {
	s.events.Dispatch(eventType, data)
}

// SubscribeEvent registers a handler on the session's bus.
func (s *Session) SubscribeEvent(eventType event.Type, handler event.Handler) {
	s.events.Subscribe(eventType, handler)
}

// RegisterCommand adds a command to the registry.
func (s *Session) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	s.commands[name] = cmdFunc
	logger.Debugf("Session: Registered command ':%s'", name)
	return nil
}

// Commands lists the registered command names.
func (s *Session) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExecuteCommand runs a registered command.
func (s *Session) ExecuteCommand(name string, args []string) error {
	s.mu.Lock()
	cmdFunc, exists := s.commands[name]
	s.mu.Unlock()
	if !exists {
		s.statusBar.SetTemporaryMessage("Unknown command: %s", name)
		return fmt.Errorf("unknown command: %s", name)
	}

	logger.Debugf("Session: Executing command ':%s' with args %v", name, args)
	if err := cmdFunc(args); err != nil {
		s.statusBar.SetTemporaryMessage("Error executing command '%s': %v", name, err)
		return err
	}
	return nil
}

// ExecuteLine parses "name arg..." and runs it.
func (s *Session) ExecuteLine(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	return s.ExecuteCommand(parts[0], parts[1:])
}

// SetStatusMessage shows a transient message on the status line.
func (s *Session) SetStatusMessage(format string, args ...interface{}) {
	s.statusBar.SetTemporaryMessage(format, args...)
}

// Notify shows a notice to the user and records it.
func (s *Session) Notify(message string) {
	s.mu.Lock()
	s.notices = append(s.notices, message)
	notifier := s.notifier
	s.mu.Unlock()

	logger.Infof("Notice: %s", message)
	s.statusBar.SetTemporaryMessage("%s", message)
	if notifier != nil {
		notifier(message)
	}
	s.events.Dispatch(event.TypeNotice, event.NoticeData{Message: message})
}

// Notices returns every notice shown so far.
func (s *Session) Notices() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.notices...)
}

func (s *Session) ConfigDir() string    { return s.configDir }
func (s *Session) LocaleSignal() string { return s.localeSignal }
