// internal/config/flags.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Overrides applies flag and environment values over a loaded Config.
type Overrides interface {
	Apply(cfg *Config)
}

// Keys of the values that can be overridden.
const (
	KeyConfigFile     = "config"
	KeyLogLevel       = "log.level"
	KeyLogFile        = "log.file"
	KeyLogTags        = "log.tags"
	KeyLogDisableTags = "log.disable_tags"
	KeyLogPackages    = "log.packages"
	KeyLogDisablePkgs = "log.disable_packages"
	KeyEngineBackend  = "engine.backend"
	KeyEngineBinary   = "engine.binary"
	KeyEngineTimeout  = "engine.timeout"
)

// flagKeys maps flag names to override keys.
var flagKeys = map[string]string{
	"config":               KeyConfigFile,
	"loglevel":             KeyLogLevel,
	"logfile":              KeyLogFile,
	"log-tags":             KeyLogTags,
	"log-disable-tags":     KeyLogDisableTags,
	"log-packages":         KeyLogPackages,
	"log-disable-packages": KeyLogDisablePkgs,
	"engine":               KeyEngineBackend,
	"astyle-binary":        KeyEngineBinary,
	"timeout":              KeyEngineTimeout,
}

// DefineFlags adds the override flags to fs.
func DefineFlags(fs *pflag.FlagSet) {
	fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default <config dir>/%s/%s)", ConfigDirName, DefaultConfigFileName))
	fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	fs.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	fs.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	fs.String("engine", "", "Formatting backend (exec, library) - Overrides config file")
	fs.String("astyle-binary", "", "astyle executable used by the exec backend - Overrides config file")
	fs.Duration("timeout", 0, "Engine timeout, e.g. 10s - Overrides config file")
}

// ViperOverrides resolves overrides from flags bound into a viper instance
// and TIDE_ASTYLE_* environment variables.
type ViperOverrides struct {
	v *viper.Viper
}

// NewViperOverrides binds the flags defined by DefineFlags on fs into a new
// viper instance that also reads the environment.
func NewViperOverrides(fs *pflag.FlagSet) (*ViperOverrides, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}
	return &ViperOverrides{v: v}, nil
}

// ConfigFile returns the --config / TIDE_ASTYLE_CONFIG value.
func (o *ViperOverrides) ConfigFile() string {
	return o.v.GetString(KeyConfigFile)
}

// Apply updates cfg with every override that was set.
func (o *ViperOverrides) Apply(cfg *Config) {
	v := o.v
	if v.IsSet(KeyLogLevel) && v.GetString(KeyLogLevel) != "" {
		cfg.Logger.LogLevel = v.GetString(KeyLogLevel)
	}
	if v.IsSet(KeyLogFile) {
		cfg.Logger.LogFilePath = v.GetString(KeyLogFile)
	}
	if tags := splitCommaList(v.GetString(KeyLogTags)); tags != nil {
		cfg.Logger.EnabledTags = tags
	}
	if tags := splitCommaList(v.GetString(KeyLogDisableTags)); tags != nil {
		cfg.Logger.DisabledTags = tags
	}
	if pkgs := splitCommaList(v.GetString(KeyLogPackages)); pkgs != nil {
		cfg.Logger.EnabledPackages = pkgs
	}
	if pkgs := splitCommaList(v.GetString(KeyLogDisablePkgs)); pkgs != nil {
		cfg.Logger.DisabledPackages = pkgs
	}
	if backend := v.GetString(KeyEngineBackend); backend != "" {
		cfg.Engine.Backend = backend
	}
	if binary := v.GetString(KeyEngineBinary); binary != "" {
		cfg.Engine.Binary = binary
	}
	if timeout := v.GetDuration(KeyEngineTimeout); timeout > 0 {
		cfg.Engine.Timeout = timeout
	}
}

// splitCommaList splits a comma-separated list, dropping empty items.
func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
