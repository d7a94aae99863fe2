package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Environment holds the process environment the host reads at startup.
type Environment struct {
	// Lang is the locale signal used to pick the default UI language.
	Lang string `env:"LANG"`
	// ConfigDir overrides the per-user configuration directory.
	ConfigDir string `env:"TIDE_ASTYLE_CONFIG_DIR"`
}

// ParseEnvironment reads the environment.
func ParseEnvironment() (Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return Environment{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}

// ParseEnvironmentFrom reads the given variables instead of the process's.
func ParseEnvironmentFrom(vars map[string]string) (Environment, error) {
	var e Environment
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Environment{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}

// LocaleSignal returns the locale string the default language is derived
// from. Only LANG counts; LC_ALL and LC_MESSAGES are ignored.
func (e Environment) LocaleSignal() string {
	return e.Lang
}

// ResolveConfigDir returns the directory holding config.toml and the
// settings file.
func (e Environment) ResolveConfigDir() (string, error) {
	if e.ConfigDir != "" {
		return e.ConfigDir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user config directory: %w", err)
	}
	return filepath.Join(base, ConfigDirName), nil
}

// SettingsPath returns the plugin settings file inside configDir.
func SettingsPath(configDir string) string {
	return filepath.Join(configDir, SettingsFileName)
}
