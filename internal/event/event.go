// internal/event/event.go
package event

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeDocumentLoaded    // A document was opened in the session
	TypeDocumentFormatted // The engine result replaced the document text
	TypeFormatFailed      // A format run ended without touching the document
	TypeSettingsLoaded    // The settings file was read at startup
	TypeSettingsSaved     // The configuration was committed and written
	TypeNotice            // A one-line message was shown to the user
)

func (t Type) String() string {
	switch t {
	case TypeDocumentLoaded:
		return "DocumentLoaded"
	case TypeDocumentFormatted:
		return "DocumentFormatted"
	case TypeFormatFailed:
		return "FormatFailed"
	case TypeSettingsLoaded:
		return "SettingsLoaded"
	case TypeSettingsSaved:
		return "SettingsSaved"
	case TypeNotice:
		return "Notice"
	default:
		return "Unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data any
}

// DocumentLoadedData describes the opened document.
type DocumentLoadedData struct {
	FilePath string
	TypeName string
}

// DocumentFormattedData describes a completed replacement.
type DocumentFormattedData struct {
	FilePath string
	TypeName string
	Options  string
	Changed  bool
}

// FormatFailedData carries the reason a format run was abandoned.
type FormatFailedData struct {
	FilePath string
	Err      error
}

// SettingsData carries the settings file and its values. Sent with
// TypeSettingsLoaded and TypeSettingsSaved.
type SettingsData struct {
	Path         string
	OptionString string
	Language     string
}

// NoticeData is a message shown to the user.
type NoticeData struct {
	Message string
}
