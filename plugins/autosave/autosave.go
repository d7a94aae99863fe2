package autosave

import (
	"github.com/bethropolis/tide-astyle/internal/event"
	"github.com/bethropolis/tide-astyle/internal/logger"
	"github.com/bethropolis/tide-astyle/internal/plugin"
)

// Ensure AutoSave implements plugin.Plugin
var _ plugin.Plugin = (*AutoSave)(nil)

// AutoSave writes the active document back to its file after a format run
// changed it.
type AutoSave struct {
	api     plugin.EditorAPI
	enabled bool
	saved   int
}

// New creates a new instance of the AutoSave plugin.
func New(enabled bool) *AutoSave {
	return &AutoSave{enabled: enabled}
}

// Name returns the unique name of the plugin.
func (p *AutoSave) Name() string {
	return "autosave"
}

// Initialize subscribes to formatted documents when enabled.
func (p *AutoSave) Initialize(api plugin.EditorAPI) error {
	p.api = api
	logger.Debugf("%s initialized. Enabled: %v", p.Name(), p.enabled)
	if p.enabled {
		api.SubscribeEvent(event.TypeDocumentFormatted, p.handleFormatted)
	}
	return nil
}

// Shutdown performs cleanup (nothing to release).
func (p *AutoSave) Shutdown() error {
	return nil
}

// Saved reports how many documents were written.
func (p *AutoSave) Saved() int {
	return p.saved
}

func (p *AutoSave) handleFormatted(e event.Event) bool {
	data, ok := e.Data.(event.DocumentFormattedData)
	if !ok || !data.Changed || data.FilePath == "" {
		return false
	}
	if err := p.api.SaveDocument(); err != nil {
		logger.Errorf("%s: failed to save '%s': %v", p.Name(), data.FilePath, err)
		p.api.Notify(err.Error())
		return false
	}
	p.saved++
	logger.Infof("%s: saved '%s'", p.Name(), data.FilePath)
	return false
}
