// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/tide-astyle/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Theme maps style names used by the configuration panel to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style. A dotted name falls back to its base
// ("Entry.Cursor" -> "Entry"), then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		if name != "Default" {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// DevComfortDark is the panel's default theme.
var DevComfortDark Theme

func init() {
	dcBackground := tcell.NewHexColor(0x2a2f38)
	dcForeground := tcell.NewHexColor(0xc5cdd9)
	dcComment := tcell.NewHexColor(0x5c6370)
	dcBlue := tcell.NewHexColor(0x61afef)
	dcGreen := tcell.NewHexColor(0x98c379)
	dcEditorBg := tcell.NewHexColor(0x21252b)
	dcSelection := tcell.NewHexColor(0x3e4451)

	DevComfortDark = Theme{
		Name:   "DevComfort Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			"Default":      tcell.StyleDefault.Foreground(dcForeground).Background(dcEditorBg),
			"Label":        tcell.StyleDefault.Foreground(dcGreen).Background(dcEditorBg).Bold(true),
			"Entry":        tcell.StyleDefault.Foreground(dcForeground).Background(dcSelection),
			"Entry.Cursor": tcell.StyleDefault.Foreground(dcEditorBg).Background(dcForeground),
			"Link":         tcell.StyleDefault.Foreground(dcBlue).Background(dcEditorBg).Underline(true),
			"Hint":         tcell.StyleDefault.Foreground(dcComment).Background(dcEditorBg),
			"StatusBar":    tcell.StyleDefault.Foreground(dcForeground).Background(dcBackground),
		},
	}
}

// Current returns the theme used by the panel.
func Current() *Theme {
	return &DevComfortDark
}
