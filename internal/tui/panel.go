package tui

import (
	"fmt"

	"github.com/bethropolis/tide-astyle/internal/config"
	"github.com/bethropolis/tide-astyle/internal/i18n"
	"github.com/bethropolis/tide-astyle/internal/logger"
	"github.com/bethropolis/tide-astyle/internal/settings"
	"github.com/bethropolis/tide-astyle/internal/statusbar"
	"github.com/bethropolis/tide-astyle/internal/theme"
	"github.com/bethropolis/tide-astyle/internal/utils"
	"github.com/gdamore/tcell/v2"
)

// Result is how the configuration panel was closed.
type Result int

const (
	ResultPending Result = iota
	ResultCommitted
	ResultCancelled
)

// Panel rows.
const (
	rowLabel    = 0
	rowEntry    = 1
	rowLanguage = 3
	rowDocs     = 5
	rowHint     = 7
)

// Panel is the configuration dialog: an option string entry, the UI
// language and a documentation link. Enter commits and saves, Esc cancels.
type Panel struct {
	manager   *settings.Manager
	statusBar *statusbar.StatusBar
	theme     *theme.Theme

	entry    string
	cursor   int // rune index into entry
	language i18n.Locale
	result   Result
}

// NewPanel creates a panel showing the manager's current settings.
func NewPanel(m *settings.Manager, sb *statusbar.StatusBar) *Panel {
	if sb == nil {
		sb = statusbar.New(statusbar.DefaultConfig())
	}
	current := m.Settings()
	return &Panel{
		manager:   m,
		statusBar: sb,
		theme:     theme.Current(),
		entry:     current.OptionString,
		cursor:    len([]rune(current.OptionString)),
		language:  current.Language,
	}
}

func (p *Panel) Entry() string         { return p.entry }
func (p *Panel) Language() i18n.Locale { return p.language }
func (p *Panel) Result() Result        { return p.result }

// HandleEvent applies one terminal event. It reports whether the panel
// needs a redraw.
func (p *Panel) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		_, resized := ev.(*tcell.EventResize)
		return resized
	}

	runeCount := len([]rune(p.entry))
	switch key.Key() {
	case tcell.KeyEnter:
		p.commit()
	case tcell.KeyEscape:
		p.result = ResultCancelled
		logger.DebugTagf("tui", "Configuration cancelled")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if p.cursor > 0 {
			p.entry = utils.DeleteRune(p.entry, p.cursor-1)
			p.cursor--
		}
	case tcell.KeyDelete:
		p.entry = utils.DeleteRune(p.entry, p.cursor)
	case tcell.KeyLeft:
		if p.cursor > 0 {
			p.cursor--
		}
	case tcell.KeyRight:
		if p.cursor < runeCount {
			p.cursor++
		}
	case tcell.KeyHome, tcell.KeyCtrlA:
		p.cursor = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		p.cursor = runeCount
	case tcell.KeyCtrlU:
		p.entry = ""
		p.cursor = 0
	case tcell.KeyTab:
		p.language = (p.language + 1) % i18n.Locale(len(i18n.Locales()))
	case tcell.KeyRune:
		p.entry = utils.InsertAtRune(p.entry, p.cursor, string(key.Rune()))
		p.cursor++
	default:
		return false
	}
	return true
}

func (p *Panel) commit() {
	err := p.manager.Apply(settings.Settings{OptionString: p.entry, Language: p.language})
	if err != nil {
		// The manager already notified; keep the panel open so the user can retry.
		p.statusBar.SetTemporaryMessage("%s", p.manager.Text(i18n.MsgSaveFailed))
		return
	}
	p.result = ResultCommitted
	p.statusBar.SetTemporaryMessage("%s", p.manager.Text(i18n.MsgSettingsSaved))
	logger.DebugTagf("tui", "Configuration committed: %q (%s)", p.entry, p.language)
}

// Draw renders the panel on screen.
func (p *Panel) Draw(screen tcell.Screen) {
	width, height := screen.Size()
	def := p.theme.GetStyle("Default")
	screen.SetStyle(def)
	screen.Clear()

	drawRow(screen, rowLabel, width, p.manager.Text(i18n.MsgOptions), p.theme.GetStyle("Label"))
	cursorX := drawEntry(screen, rowEntry, width, p.entry, p.cursor,
		p.theme.GetStyle("Entry"), p.theme.GetStyle("Entry.Cursor"))
	screen.ShowCursor(cursorX, rowEntry)

	drawRow(screen, rowLanguage, width,
		fmt.Sprintf("%s %s", p.manager.Text(i18n.MsgLanguage), p.language.Code()), def)
	drawRow(screen, rowDocs, width,
		fmt.Sprintf("%s: %s", p.manager.Text(i18n.MsgDocumentation), config.DocumentationURL), p.theme.GetStyle("Link"))
	drawRow(screen, rowHint, width, "Enter: OK   Esc: Cancel   Tab: Language", p.theme.GetStyle("Hint"))

	if height > rowHint+1 {
		p.statusBar.Draw(screen, width, height-1)
	}
}
