package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bethropolis/tide-astyle/internal/app"
	"github.com/bethropolis/tide-astyle/internal/config"
	"github.com/bethropolis/tide-astyle/internal/diffview"
	"github.com/bethropolis/tide-astyle/internal/i18n"
	"github.com/bethropolis/tide-astyle/internal/logger"
	"github.com/bethropolis/tide-astyle/internal/settings"
)

// cliState is the process state shared by the subcommands.
type cliState struct {
	cfg       *config.Config
	env       config.Environment
	configDir string
	logCloser io.Closer
}

func (r *cliState) setup(cmd *cobra.Command) error {
	env, err := config.ParseEnvironment()
	if err != nil {
		return err
	}
	r.env = env

	r.configDir, err = env.ResolveConfigDir()
	if err != nil {
		return err
	}

	overrides, err := config.NewViperOverrides(cmd.Flags())
	if err != nil {
		return err
	}
	path := overrides.ConfigFile()
	if path == "" {
		path = config.DefaultConfigPath(r.configDir)
	}
	cfg, loadErr := config.Load(path, overrides)
	r.cfg = cfg

	r.logCloser, err = logger.Open(cfg.Logger)
	if err != nil {
		return err
	}
	if loadErr != nil {
		logger.Warnf("Using default configuration: %v", loadErr)
		fmt.Fprintln(os.Stderr, diffview.Notice(loadErr.Error()))
	}
	if keys := cfg.Undecoded(); len(keys) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", path, keys)
	}
	logger.Debugf("Config dir: %s, locale signal: %q", r.configDir, env.LocaleSignal())
	return nil
}

func (r *cliState) close() {
	if r.logCloser != nil {
		_ = r.logCloser.Close()
		r.logCloser = nil
	}
}

// notify prints a notice to stderr.
func notify(message string) {
	fmt.Fprintln(os.Stderr, diffview.Notice(message))
}

// newApp builds the application with the configured engine.
func (r *cliState) newApp(saveFormatted bool) (*app.App, error) {
	return app.New(app.Options{
		Config:        r.cfg,
		ConfigDir:     r.configDir,
		LocaleSignal:  r.env.LocaleSignal(),
		Notifier:      notify,
		SaveFormatted: saveFormatted,
	})
}

// settingsManager loads the plugin settings without starting an engine.
// An unreadable settings file leaves the defaults in place.
func (r *cliState) settingsManager() (*settings.Manager, error) {
	if r.configDir == "" {
		return nil, fmt.Errorf("no configuration directory")
	}
	m := settings.NewManager(config.SettingsPath(r.configDir), r.env.LocaleSignal(), i18n.Default(), settings.NotifierFunc(notify))
	if err := m.Load(); err != nil {
		notify(err.Error())
	}
	return m, nil
}
