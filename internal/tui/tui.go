// internal/tui/tui.go
package tui

import (
	"fmt"

	"github.com/bethropolis/tide-astyle/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// TUI owns the terminal the configuration panel is shown on.
type TUI struct {
	screen tcell.Screen
}

// New opens the controlling terminal.
func New() (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen takes over s, which may be a simulation screen.
func NewWithScreen(s tcell.Screen) (*TUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	s.SetStyle(theme.Current().GetStyle("Default"))
	s.EnableFocus()
	return &TUI{screen: s}, nil
}

// Close restores the terminal.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
		t.screen = nil
	}
}

// Screen returns the underlying screen.
func (t *TUI) Screen() tcell.Screen {
	return t.screen
}

// Run shows p and feeds it events until it is committed or cancelled.
// A closed event stream counts as a cancel.
func (t *TUI) Run(p *Panel) Result {
	t.redraw(p)
	for p.Result() == ResultPending {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			p.result = ResultCancelled
		case *tcell.EventResize:
			t.screen.Sync()
			t.redraw(p)
		case *tcell.EventFocus:
			if ev.Focused {
				t.redraw(p)
			}
		default:
			if p.HandleEvent(ev) {
				t.redraw(p)
			}
		}
	}
	return p.Result()
}

func (t *TUI) redraw(p *Panel) {
	p.Draw(t.screen)
	t.screen.Show()
}
