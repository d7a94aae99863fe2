// internal/app/app.go
package app

import (
	"fmt"

	"github.com/bethropolis/tide-astyle/internal/config"
	"github.com/bethropolis/tide-astyle/internal/engine"
	"github.com/bethropolis/tide-astyle/internal/filetype"
	"github.com/bethropolis/tide-astyle/internal/formatter"
	"github.com/bethropolis/tide-astyle/internal/host"
	"github.com/bethropolis/tide-astyle/internal/i18n"
	"github.com/bethropolis/tide-astyle/internal/logger"
	"github.com/bethropolis/tide-astyle/internal/settings"
	"github.com/bethropolis/tide-astyle/internal/statusbar"
	"github.com/bethropolis/tide-astyle/plugins/astyle"
	"github.com/bethropolis/tide-astyle/plugins/autosave"
)

// Options configures an App.
type Options struct {
	Config       *config.Config
	ConfigDir    string
	LocaleSignal string

	// Engine overrides the backend selected by Config.Engine.
	Engine engine.Engine
	// Notifier shows notices to the user.
	Notifier func(message string)
	// SaveFormatted writes formatted documents back to their files.
	SaveFormatted bool
}

// App wires the session, the formatter and the plugins together.
type App struct {
	cfg       *config.Config
	session   *host.Session
	astyle    *astyle.AStyle
	autosave  *autosave.AutoSave
	fileTypes *filetype.Registry
}

// New creates the application and initializes its plugins.
func New(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	eng := opts.Engine
	if eng == nil {
		var err error
		eng, err = engine.New(cfg.Engine.EngineOptions())
		if err != nil {
			return nil, fmt.Errorf("formatting engine unavailable: %w", err)
		}
	}

	sb := statusbar.DefaultConfig()
	sb.MessageTimeout = config.MessageTimeout
	session := host.NewSession(host.Config{
		ConfigDir:    opts.ConfigDir,
		LocaleSignal: opts.LocaleSignal,
		StatusBar:    statusbar.New(sb),
		Notifier:     opts.Notifier,
	})

	a := &App{
		cfg:       cfg,
		session:   session,
		fileTypes: filetype.Default(),
	}
	a.astyle = astyle.New(formatter.NewInvoker(eng), astyle.WithFileTypes(a.fileTypes), astyle.WithCatalog(i18n.Default()))
	a.autosave = autosave.New(opts.SaveFormatted)

	a.subscribeEvents()
	if err := registerPlugins(session, a.astyle, a.autosave); err != nil {
		return nil, err
	}
	logger.Debugf("App: ready (engine backend %s, config dir %s)", cfg.Engine.Backend, opts.ConfigDir)
	return a, nil
}

// Session returns the host session.
func (a *App) Session() *host.Session { return a.session }

// Settings returns the AStyle settings manager.
func (a *App) Settings() *settings.Manager { return a.astyle.Settings() }

// Plugin returns the AStyle plugin.
func (a *App) Plugin() *astyle.AStyle { return a.astyle }

// Close shuts the plugins down.
func (a *App) Close() {
	a.session.Close()
}
