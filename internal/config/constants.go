package config

import "time"

// Base application details
const AppName = "tide-astyle"
const ConfigDirName = "tide-astyle"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "tide-astyle.log"

// SettingsFileName is the plugin's settings file inside the config directory.
const SettingsFileName = "astyle-plugin.conf"

// Plugin metadata
const PluginName = "AStyle"
const PluginDescription = "Plugin for Artistic Style code formatter.\nAStyle website: http://astyle.sourceforge.net/"
const PluginVersion = "0.2"
const PluginAuthor = "https://launchpad.net/~anhan10"

// DocumentationURL is shown in the configuration panel.
const DocumentationURL = "http://astyle.sourceforge.net/astyle.html"

// Engine defaults
const DefaultEngineBackend = "exec"
const DefaultEngineBinary = "astyle"
const DefaultEngineTimeout = 10 * time.Second

// Status Bar
const MessageTimeout = 4 * time.Second

// EnvPrefix prefixes every environment override (TIDE_ASTYLE_LOG_LEVEL, ...).
const EnvPrefix = "TIDE_ASTYLE"
