package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tide-astyle/internal/i18n"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "astyle-plugin.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDetectDefaultLocale(t *testing.T) {
	tests := []struct {
		signal string
		want   i18n.Locale
	}{
		{signal: "de_DE.UTF-8", want: i18n.LocaleDE},
		{signal: "de", want: i18n.LocaleDE},
		{signal: "en_US.UTF-8", want: i18n.LocaleEN},
		{signal: "fr_FR", want: i18n.LocaleEN},
		{signal: "d", want: i18n.LocaleEN},
		{signal: "", want: i18n.LocaleEN},
		{signal: "DE_de", want: i18n.LocaleEN},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, DetectDefaultLocale(tc.signal), tc.signal)
	}
}

func TestDefaults(t *testing.T) {
	for _, signal := range []string{"", "de_AT", "C"} {
		assert.Equal(t, "--style=gnu", Defaults(signal).OptionString)
	}
	assert.Equal(t, i18n.LocaleDE, Defaults("de_AT").Language)
}

func TestLoadMissingFile(t *testing.T) {
	current := Settings{OptionString: "--style=kr", Language: i18n.LocaleDE}
	got, err := Load(filepath.Join(t.TempDir(), "nope.conf"), current)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, current, got)
}

func TestLoadKeepsCurrentForMissingKeys(t *testing.T) {
	path := writeFile(t, "[General]\nversion = \"0.1\"\n")
	current := Settings{OptionString: "--style=kr", Language: i18n.LocaleDE}

	got, err := Load(path, current)
	require.NoError(t, err)
	assert.Equal(t, current, got)
}

func TestLoadReadsValues(t *testing.T) {
	path := writeFile(t, "[General]\nlanguage = 0\n\n[AStyle]\noptStr = \"--style=java -s4\"\n")

	got, err := Load(path, Defaults(""))
	require.NoError(t, err)
	assert.Equal(t, Settings{OptionString: "--style=java -s4", Language: i18n.LocaleDE}, got)
}

func TestLoadCorrectsInvalidLanguage(t *testing.T) {
	for _, value := range []string{"2", "-1", "99"} {
		path := writeFile(t, "[General]\nlanguage = "+value+"\n[AStyle]\noptStr = \"-A1\"\n")

		got, err := Load(path, Settings{OptionString: "x", Language: i18n.LocaleDE})
		require.ErrorIs(t, err, ErrInvalidLocale, value)
		var invalid *InvalidLocaleError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, i18n.FallbackLocale, got.Language)
		assert.Equal(t, "-A1", got.OptionString)
	}
}

func TestLoadNonIntegerLanguageKeepsOptionString(t *testing.T) {
	tests := []struct {
		value, want string
	}{
		{value: `"de"`, want: "de"},
		{value: "1.5", want: "1.5"},
		{value: "true", want: "true"},
	}
	for _, tc := range tests {
		path := writeFile(t, "[General]\nlanguage = "+tc.value+"\n[AStyle]\noptStr = \"--style=kr\"\n")

		got, err := Load(path, Settings{OptionString: "--style=gnu", Language: i18n.LocaleDE})
		require.ErrorIs(t, err, ErrInvalidLocale, tc.value)
		var invalid *InvalidLocaleError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, tc.want, invalid.Value)
		assert.Equal(t, Settings{OptionString: "--style=kr", Language: i18n.FallbackLocale}, got)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeFile(t, "[General\nlanguage = ")
	current := Defaults("")

	got, err := Load(path, current)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, current, got)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "astyle-plugin.conf")
	want := Settings{OptionString: `--style=allman --indent=spaces=2 "quoted"`, Language: i18n.LocaleDE}
	require.NoError(t, Save(path, want))

	first, err := Load(path, Defaults(""))
	require.NoError(t, err)
	assert.Equal(t, want, first)

	require.NoError(t, Save(path, first))
	second, err := Load(path, Defaults(""))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `version = "0.2"`)
}

func TestSaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := Save(filepath.Join(blocker, "astyle-plugin.conf"), Defaults(""))
	assert.ErrorIs(t, err, ErrWriteFailed)
}
