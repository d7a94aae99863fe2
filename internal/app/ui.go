package app

import (
	"github.com/bethropolis/tide-astyle/internal/settings"
	"github.com/bethropolis/tide-astyle/internal/statusbar"
	"github.com/bethropolis/tide-astyle/internal/tui"
)

// RunConfigPanel shows the configuration panel on the terminal for m.
func RunConfigPanel(m *settings.Manager) (tui.Result, error) {
	ui, err := tui.New()
	if err != nil {
		return tui.ResultCancelled, err
	}
	defer ui.Close()

	panel := tui.NewPanel(m, statusbar.New(statusbar.DefaultConfig()))
	return ui.Run(panel), nil
}
