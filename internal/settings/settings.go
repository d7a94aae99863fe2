// Package settings holds the plugin's persistent configuration record and
// its load/save policy.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/tide-astyle/internal/i18n"
)

// DefaultOptionString is the option string of a fresh installation.
const DefaultOptionString = "--style=gnu"

// FileVersion is written to the General table. It is informational only.
const FileVersion = "0.2"

var (
	// ErrNotFound means the settings file is absent or unreadable.
	ErrNotFound = errors.New("settings file not found")
	// ErrInvalidLocale means the persisted language was outside the supported set.
	ErrInvalidLocale = errors.New("invalid or unknown language")
	// ErrWriteFailed means the settings file could not be written.
	ErrWriteFailed = errors.New("settings file could not be written")
)

// Settings is the user's formatter configuration.
type Settings struct {
	OptionString string
	Language     i18n.Locale
}

// InvalidLocaleError reports the persisted language value a load corrected,
// as written in the file.
type InvalidLocaleError struct {
	Value string
}

func (e *InvalidLocaleError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidLocale, e.Value)
}

func (e *InvalidLocaleError) Unwrap() error { return ErrInvalidLocale }

// localePrefixes maps the two-letter prefixes of the locale signal that
// select a non-default UI language.
var localePrefixes = map[string]i18n.Locale{
	"de": i18n.LocaleDE,
}

// DetectDefaultLocale picks the UI language from a locale signal such as
// the LANG environment value ("de_DE.UTF-8").
func DetectDefaultLocale(signal string) i18n.Locale {
	if len(signal) >= 2 {
		if l, ok := localePrefixes[signal[:2]]; ok {
			return l
		}
	}
	return i18n.LocaleEN
}

// Defaults returns the settings of a fresh installation.
func Defaults(signal string) Settings {
	return Settings{
		OptionString: DefaultOptionString,
		Language:     DetectDefaultLocale(signal),
	}
}

// fileSchema is the on-disk layout. Pointers tell missing keys apart.
// Language is decoded loosely so a value of the wrong type does not
// discard the rest of the file.
type fileSchema struct {
	General struct {
		Version  *string `toml:"version"`
		Language any     `toml:"language"`
	} `toml:"General"`
	AStyle struct {
		OptStr *string `toml:"optStr"`
	} `toml:"AStyle"`
}

// Load reads path on top of current. Keys missing from the file keep the
// value from current. An out-of-range or non-integer language is replaced with
// i18n.FallbackLocale and reported as an *InvalidLocaleError alongside the
// corrected settings; any other error leaves current untouched.
func Load(path string, current Settings) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return current, fmt.Errorf("%w: '%s': %v", ErrNotFound, path, err)
	}

	var file fileSchema
	if _, err := toml.Decode(string(data), &file); err != nil {
		return current, fmt.Errorf("failed to parse settings file '%s': %w", path, err)
	}

	loaded := current
	if file.AStyle.OptStr != nil {
		loaded.OptionString = *file.AStyle.OptStr
	}

	var corrected error
	switch lang := file.General.Language.(type) {
	case nil:
	case int64:
		if lang < 0 || lang >= int64(len(i18n.Locales())) {
			loaded.Language = i18n.FallbackLocale
			corrected = &InvalidLocaleError{Value: strconv.FormatInt(lang, 10)}
		} else {
			loaded.Language = i18n.Locale(lang)
		}
	default:
		loaded.Language = i18n.FallbackLocale
		corrected = &InvalidLocaleError{Value: fmt.Sprint(lang)}
	}
	return loaded, corrected
}

// Encode renders s in the settings file format.
func Encode(s Settings) (string, error) {
	var file fileSchema
	version := FileVersion
	optStr := s.OptionString
	file.General.Version = &version
	file.General.Language = int64(s.Language)
	file.AStyle.OptStr = &optStr

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(file); err != nil {
		return "", fmt.Errorf("failed to encode settings: %w", err)
	}
	return sb.String(), nil
}

// Save writes s to path, creating the parent directory if needed.
func Save(path string, s Settings) error {
	text, err := Encode(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: '%s': %v", ErrWriteFailed, path, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("%w: '%s': %v", ErrWriteFailed, path, err)
	}
	return nil
}
