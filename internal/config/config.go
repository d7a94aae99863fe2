// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/tide-astyle/internal/engine"
	"github.com/bethropolis/tide-astyle/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // [logger] table
	Engine EngineConfig  `toml:"engine"`

	undecoded []string
}

// EngineConfig selects the formatting backend.
type EngineConfig struct {
	Backend string        `toml:"backend"` // "exec" or "library"
	Binary  string        `toml:"binary"`  // astyle executable for the exec backend
	Timeout time.Duration `toml:"timeout"` // e.g. "10s"
}

// EngineOptions converts the table into the engine package's Config.
func (e EngineConfig) EngineOptions() engine.Config {
	return engine.Config{
		Backend: e.Backend,
		Binary:  e.Binary,
		Timeout: e.Timeout,
	}
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "",
		},
		Engine: EngineConfig{
			Backend: DefaultEngineBackend,
			Binary:  DefaultEngineBinary,
			Timeout: DefaultEngineTimeout,
		},
	}
}

// DefaultConfigPath returns <configDir>/config.toml.
func DefaultConfigPath(configDir string) string {
	return filepath.Join(configDir, DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		// Logged once the logger is up; see Load's caller.
		cfg.undecoded = make([]string, len(undecoded))
		for i, key := range undecoded {
			cfg.undecoded[i] = key.String()
		}
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Engine.Backend == "" {
		c.Engine.Backend = defaults.Engine.Backend
	}
	if c.Engine.Binary == "" {
		c.Engine.Binary = defaults.Engine.Binary
	}
	if c.Engine.Timeout <= 0 {
		c.Engine.Timeout = defaults.Engine.Timeout
	}
}

// Undecoded lists config file keys that matched no field.
func (c *Config) Undecoded() []string { return c.undecoded }

// Load builds the configuration: defaults, then the TOML file at path (if it
// exists), then overrides, then validation.
func Load(path string, overrides Overrides) (*Config, error) {
	cfg := NewDefaultConfig()
	var loadErr error
	if path != "" {
		loadErr = loadFromFile(path, cfg)
	}
	if overrides != nil {
		overrides.Apply(cfg)
	}
	cfg.validate()
	return cfg, loadErr
}
