// plugins/astyle/astyle.go
package astyle

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bethropolis/tide-astyle/internal/config"
	"github.com/bethropolis/tide-astyle/internal/event"
	"github.com/bethropolis/tide-astyle/internal/filetype"
	"github.com/bethropolis/tide-astyle/internal/formatter"
	"github.com/bethropolis/tide-astyle/internal/i18n"
	"github.com/bethropolis/tide-astyle/internal/logger"
	"github.com/bethropolis/tide-astyle/internal/plugin"
	"github.com/bethropolis/tide-astyle/internal/settings"
)

// Ensure AStyle implements plugin.Plugin
var _ plugin.Plugin = (*AStyle)(nil)

// Command names registered with the host.
const (
	CmdFormat   = "astyle"
	CmdOptions  = "astyle-options"
	CmdLanguage = "astyle-language"
	CmdReset    = "astyle-reset"
	CmdVersion  = "astyle-version"
)

// AStyle formats the active document with Artistic Style.
type AStyle struct {
	api      plugin.EditorAPI
	invoker  *formatter.Invoker
	types    *filetype.Registry
	catalog  *i18n.Catalog
	settings *settings.Manager

	// settingsPath overrides <ConfigDir>/astyle-plugin.conf.
	settingsPath string
}

// Option configures the plugin.
type Option func(*AStyle)

// WithFileTypes sets the registry used by the syntax guard.
func WithFileTypes(r *filetype.Registry) Option {
	return func(p *AStyle) { p.types = r }
}

// WithCatalog sets the message catalog.
func WithCatalog(c *i18n.Catalog) Option {
	return func(p *AStyle) { p.catalog = c }
}

// WithSettingsPath overrides the settings file location.
func WithSettingsPath(path string) Option {
	return func(p *AStyle) { p.settingsPath = path }
}

// New creates the plugin around an invoker.
func New(invoker *formatter.Invoker, opts ...Option) *AStyle {
	p := &AStyle{invoker: invoker}
	for _, opt := range opts {
		opt(p)
	}
	if p.types == nil {
		p.types = filetype.Default()
	}
	if p.catalog == nil {
		p.catalog = i18n.Default()
	}
	return p
}

// Name returns the unique name of the plugin.
func (p *AStyle) Name() string {
	return config.PluginName
}

// Info describes the plugin.
func (p *AStyle) Info() plugin.Info {
	return plugin.Info{
		Name:        config.PluginName,
		Description: config.PluginDescription,
		Version:     config.PluginVersion,
		Author:      config.PluginAuthor,
	}
}

// Initialize loads the settings and registers the commands.
func (p *AStyle) Initialize(api plugin.EditorAPI) error {
	p.api = api

	path := p.settingsPath
	if path == "" {
		path = config.SettingsPath(api.ConfigDir())
	}
	p.settings = settings.NewManager(path, api.LocaleSignal(), p.catalog, settings.NotifierFunc(api.Notify))
	if err := p.settings.Load(); err != nil {
		// Unreadable settings leave the defaults in place.
		logger.Warnf("AStyle: keeping default settings: %v", err)
	}
	p.dispatchSettings(event.TypeSettingsLoaded)

	commands := map[string]plugin.CommandFunc{
		CmdFormat:   p.formatCommand,
		CmdOptions:  p.optionsCommand,
		CmdLanguage: p.languageCommand,
		CmdReset:    p.resetCommand,
		CmdVersion:  p.versionCommand,
	}
	for _, name := range []string{CmdFormat, CmdOptions, CmdLanguage, CmdReset, CmdVersion} {
		if err := api.RegisterCommand(name, commands[name]); err != nil {
			return fmt.Errorf("failed to register '%s' command: %w", name, err)
		}
	}
	return nil
}

// Shutdown performs cleanup (nothing to release; settings are saved on commit).
func (p *AStyle) Shutdown() error {
	return nil
}

// Settings returns the settings manager, nil before Initialize.
func (p *AStyle) Settings() *settings.Manager {
	return p.settings
}

// FormatDocument formats the active document and replaces its text,
// keeping the cursor on its line. Without an active document it returns
// formatter.ErrNoActiveDocument and does nothing else. On engine failure
// the document is left untouched.
func (p *AStyle) FormatDocument(ctx context.Context) error {
	text, ok := p.api.CurrentDocumentText()
	if !ok {
		return formatter.ErrNoActiveDocument
	}
	typeName := p.api.CurrentDocumentTypeName()
	path := p.api.CurrentDocumentPath()
	current := p.settings.Settings()

	formatted, err := p.invoker.Format(text, typeName, current)
	if err != nil {
		p.api.Notify(p.failureNotice(current.Language, err))
		p.api.DispatchEvent(event.TypeFormatFailed, event.FormatFailedData{FilePath: path, Err: err})
		return err
	}

	if regressed, err := p.types.Regressed(ctx, typeName, []byte(text), []byte(formatted)); err != nil {
		logger.DebugTagf("astyle", "Syntax guard skipped: %v", err)
	} else if regressed {
		logger.Warnf("AStyle: formatted %s document '%s' no longer parses cleanly", typeName, filepath.Base(path))
	}

	if err := p.api.ReplaceDocumentText(formatted, true); err != nil {
		return err
	}
	p.api.DispatchEvent(event.TypeDocumentFormatted, event.DocumentFormattedData{
		FilePath: path,
		TypeName: typeName,
		Options:  formatter.NewRequest(current, typeName, text).Options(),
		Changed:  formatted != text,
	})
	p.api.SetStatusMessage("%s", p.catalog.Text(current.Language, i18n.MsgFormatted))
	return nil
}

func (p *AStyle) failureNotice(locale i18n.Locale, err error) string {
	msg := p.catalog.Text(locale, i18n.MsgEngineFailure)
	var engineErr *formatter.EngineError
	if errors.As(err, &engineErr) && len(engineErr.Diagnostics) > 0 {
		parts := make([]string, len(engineErr.Diagnostics))
		for i, d := range engineErr.Diagnostics {
			parts[i] = d.String()
		}
		msg += ": " + strings.Join(parts, "; ")
	}
	return msg
}

func (p *AStyle) formatCommand(args []string) error {
	err := p.FormatDocument(context.Background())
	if errors.Is(err, formatter.ErrNoActiveDocument) {
		logger.DebugTagf("astyle", "No active document, nothing to format")
		return nil
	}
	return err
}

// optionsCommand shows the option string, or commits the arguments as the
// new one.
func (p *AStyle) optionsCommand(args []string) error {
	current := p.settings.Settings()
	if len(args) == 0 {
		p.api.SetStatusMessage("%s %s", p.catalog.Text(current.Language, i18n.MsgOptions), current.OptionString)
		return nil
	}
	return p.CommitOptions(strings.Join(args, " "))
}

// CommitOptions stores and saves a new option string.
func (p *AStyle) CommitOptions(optionString string) error {
	if err := p.settings.Commit(optionString); err != nil {
		return err
	}
	p.settingsSaved()
	return nil
}

func (p *AStyle) languageCommand(args []string) error {
	current := p.settings.Settings()
	if len(args) == 0 {
		p.api.SetStatusMessage("%s %s", p.catalog.Text(current.Language, i18n.MsgLanguage), current.Language.Code())
		return nil
	}
	locale, err := i18n.ParseLocale(args[0])
	if err != nil {
		p.api.Notify(fmt.Sprintf("%s: %s", p.catalog.Text(current.Language, i18n.MsgInvalidLanguage), args[0]))
		return err
	}
	if err := p.settings.CommitLanguage(locale); err != nil {
		return err
	}
	p.settingsSaved()
	return nil
}

func (p *AStyle) resetCommand(args []string) error {
	p.settings.Reset()
	if err := p.settings.Save(); err != nil {
		return err
	}
	p.settingsSaved()
	return nil
}

func (p *AStyle) versionCommand(args []string) error {
	p.api.SetStatusMessage("%s %s (Artistic Style %s)", config.PluginName, config.PluginVersion, p.invoker.Version())
	return nil
}

func (p *AStyle) settingsSaved() {
	p.dispatchSettings(event.TypeSettingsSaved)
	p.api.SetStatusMessage("%s", p.settings.Text(i18n.MsgSettingsSaved))
}

func (p *AStyle) dispatchSettings(t event.Type) {
	s := p.settings.Settings()
	p.api.DispatchEvent(t, event.SettingsData{
		Path:         p.settings.Path(),
		OptionString: s.OptionString,
		Language:     s.Language.Code(),
	})
}
