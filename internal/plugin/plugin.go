// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/tide-astyle/internal/event"
)

// CommandFunc defines the signature for commands registered by plugins.
// It takes arguments (e.g., from user input) and returns an error.
type CommandFunc func(args []string) error

// EditorAPI defines the methods plugins can use to interact with the host.
type EditorAPI interface {
	// --- Document Access ---
	// CurrentDocumentText returns the active document's full text; ok is false
	// when no document is open.
	CurrentDocumentText() (text string, ok bool)
	// CurrentDocumentTypeName returns the host's type name for the active
	// document ("C", "C++", "Java", "C#", ..., "None").
	CurrentDocumentTypeName() string
	CurrentDocumentPath() string

	// --- Document Modification ---
	// ReplaceDocumentText replaces the whole active document. With
	// preserveCursorLine the cursor stays on its line (clamped) at column 0.
	ReplaceDocumentText(text string, preserveCursorLine bool) error
	// SaveDocument writes the active document to its file.
	SaveDocument() error

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Messages ---
	SetStatusMessage(format string, args ...interface{}) // transient status line
	Notify(message string)                               // user-visible notice

	// --- Environment ---
	ConfigDir() string
	LocaleSignal() string
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded.
	// Used for setup, subscribing to events, registering commands.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the host is closing.
	Shutdown() error
}

// Info describes a plugin to the user.
type Info struct {
	Name        string
	Description string
	Version     string
	Author      string
}

// Describer is implemented by plugins that publish metadata.
type Describer interface {
	Info() Info
}
