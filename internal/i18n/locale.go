// Package i18n holds the plugin's UI languages and its localized message table.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a UI display language. Its integer value is what the settings
// file persists, so existing values must never be renumbered.
type Locale int

const (
	LocaleDE Locale = iota
	LocaleEN

	localeCount
)

// FallbackLocale replaces persisted locales outside the supported set.
const FallbackLocale = LocaleEN

var localeTags = [localeCount]language.Tag{
	LocaleDE: language.German,
	LocaleEN: language.English,
}

// Locales returns every supported locale in persisted order.
func Locales() []Locale {
	out := make([]Locale, 0, localeCount)
	for l := Locale(0); l < localeCount; l++ {
		out = append(out, l)
	}
	return out
}

// Valid reports whether l is a member of the supported set.
func (l Locale) Valid() bool {
	return l >= 0 && l < localeCount
}

// Tag returns the BCP 47 tag for l, or language.Und for an invalid locale.
func (l Locale) Tag() language.Tag {
	if !l.Valid() {
		return language.Und
	}
	return localeTags[l]
}

// Code is the two-letter language code, e.g. "de".
func (l Locale) Code() string {
	base, _ := l.Tag().Base()
	return base.String()
}

func (l Locale) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Locale(%d)", int(l))
	}
	return l.Code()
}

// ParseLocale accepts a two-letter code or a full tag such as "de-AT".
func ParseLocale(s string) (Locale, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid language %q: %w", s, err)
	}
	base, _ := tag.Base()
	for _, l := range Locales() {
		if l.Code() == base.String() {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unsupported language %q", s)
}
