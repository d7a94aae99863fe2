package i18n

import (
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// MessageID identifies a localized UI string.
type MessageID int

const (
	MsgOptionFile MessageID = iota
	MsgOptions
	MsgDocumentation
	MsgInvalidLanguage
	MsgLanguage
	MsgSaveFailed
	MsgEngineFailure
	MsgFormatted
	MsgSettingsSaved

	messageCount
)

var messageKeys = [messageCount]string{
	MsgOptionFile:      "OptionFile",
	MsgOptions:         "Options",
	MsgDocumentation:   "Documentation",
	MsgInvalidLanguage: "InvalidLanguage",
	MsgLanguage:        "Language",
	MsgSaveFailed:      "SaveFailed",
	MsgEngineFailure:   "EngineFailure",
	MsgFormatted:       "Formatted",
	MsgSettingsSaved:   "SettingsSaved",
}

func (id MessageID) String() string {
	if id < 0 || id >= messageCount {
		return fmt.Sprintf("MessageID(%d)", int(id))
	}
	return messageKeys[id]
}

// ErrNotFound is returned for a message id or locale outside the table.
var ErrNotFound = errors.New("localized string not found")

//go:embed locales/*.toml
var localeFS embed.FS

// Catalog is the read-only (Locale, MessageID) -> text table.
type Catalog struct {
	texts [localeCount][messageCount]string
}

// NewCatalog loads the embedded message files and checks that every
// supported locale defines every message id.
func NewCatalog() (*Catalog, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, l := range Locales() {
		path := fmt.Sprintf("locales/active.%s.toml", l.Code())
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			return nil, fmt.Errorf("failed to load message file '%s': %w", path, err)
		}
	}
	return newCatalogFromBundle(bundle)
}

func newCatalogFromBundle(bundle *goi18n.Bundle) (*Catalog, error) {
	c := &Catalog{}
	var missing []error
	for _, l := range Locales() {
		localizer := goi18n.NewLocalizer(bundle, l.Code())
		for id := MessageID(0); id < messageCount; id++ {
			text, tag, err := localizer.LocalizeWithTag(&goi18n.LocalizeConfig{MessageID: id.String()})
			// A hit from another language is the bundle's fallback, not a definition.
			if err != nil || !sameLanguage(tag, l.Tag()) {
				missing = append(missing, fmt.Errorf("locale %s: missing message %s", l, id))
				continue
			}
			c.texts[l][id] = text
		}
	}
	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}
	return c, nil
}

func sameLanguage(a, b language.Tag) bool {
	ab, _ := a.Base()
	bb, _ := b.Base()
	return ab == bb
}

// Lookup returns the text for id in locale. Unknown locales and ids are
// reported as ErrNotFound.
func (c *Catalog) Lookup(locale Locale, id MessageID) (string, error) {
	if !locale.Valid() || id < 0 || id >= messageCount {
		return "", fmt.Errorf("%w: %s/%s", ErrNotFound, locale, id)
	}
	return c.texts[locale][id], nil
}

// Text is Lookup for callers that tolerate gaps: it falls back to the
// message key.
func (c *Catalog) Text(locale Locale, id MessageID) string {
	text, err := c.Lookup(locale, id)
	if err != nil {
		return id.String()
	}
	return text
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the process-wide catalog built from the embedded tables.
// It panics if those tables are incomplete.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := NewCatalog()
		if err != nil {
			panic(fmt.Sprintf("i18n: embedded message tables are invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
