package app

import (
	"github.com/bethropolis/tide-astyle/internal/event"
	"github.com/bethropolis/tide-astyle/internal/logger"
)

func (a *App) subscribeEvents() {
	a.session.SubscribeEvent(event.TypeDocumentFormatted, a.handleDocumentFormatted)
	a.session.SubscribeEvent(event.TypeFormatFailed, a.handleFormatFailed)
	a.session.SubscribeEvent(event.TypeSettingsSaved, a.handleSettingsSaved)
}

func (a *App) handleDocumentFormatted(e event.Event) bool {
	if data, ok := e.Data.(event.DocumentFormattedData); ok {
		logger.Infof("Formatted '%s' as %s with %q (changed: %v)", data.FilePath, data.TypeName, data.Options, data.Changed)
	}
	return false
}

func (a *App) handleFormatFailed(e event.Event) bool {
	if data, ok := e.Data.(event.FormatFailedData); ok {
		logger.Warnf("Format of '%s' failed: %v", data.FilePath, data.Err)
	}
	return false
}

func (a *App) handleSettingsSaved(e event.Event) bool {
	if data, ok := e.Data.(event.SettingsData); ok {
		logger.Infof("Settings saved to '%s' (language %s)", data.Path, data.Language)
	}
	return false
}
